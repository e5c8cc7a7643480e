package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/service/ledgerservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
)

func NewMock(t *testing.T) (*ResourceHandler, *MockResourceService, *MockLedgerService) {
	ctrl := gomock.NewController(t)
	resourceService := NewMockResourceService(ctrl)
	ledgerService := NewMockLedgerService(ctrl)
	handler := New(resourceService, ledgerService)
	defer ctrl.Finish()
	return handler, resourceService, ledgerService
}

func requestWithID(method, target, id string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = bytes.NewBuffer(nil)
	}
	r := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestPurchaseHandler(t *testing.T) {
	handler, _, ledgerService := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful purchase returns new balance",
			id:   "10",
			prepareMock: func() {
				ledgerService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(70.0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid resource id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Resource not found",
			id:   "99",
			prepareMock: func() {
				ledgerService.EXPECT().Purchase(gomock.Any(), 1, 99).Return(0.0, ledgerservice.ErrResourceNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already purchased",
			id:   "10",
			prepareMock: func() {
				ledgerService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(0.0, ledgerservice.ErrAlreadyPurchased)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient balance",
			id:   "10",
			prepareMock: func() {
				ledgerService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(0.0, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			id:   "10",
			prepareMock: func() {
				ledgerService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(0.0, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := requestWithID(http.MethodPost, "/api/resources/"+tt.id+"/purchase", tt.id, nil)
			w := httptest.NewRecorder()
			handler.Purchase(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, _, ledgerService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deposit request",
			body: `{"amount":50,"transaction_id":"ref-1","bank_info":{"card_number":"4561261212345467"}}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					RequestDeposit(gomock.Any(), 1, 50.0, "ref-1", gomock.Any()).
					Return(&domain.Transaction{ID: 7, Status: "pending"}, 20.0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Card number fails checksum",
			body:         `{"amount":50,"transaction_id":"ref-1","bank_info":{"card_number":"1234567890123456"}}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0,"transaction_id":"ref-1"}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					RequestDeposit(gomock.Any(), 1, 0.0, "ref-1", gomock.Any()).
					Return(nil, 0.0, ledgerservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing transaction reference",
			body: `{"amount":50}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					RequestDeposit(gomock.Any(), 1, 50.0, "", gomock.Any()).
					Return(nil, 0.0, ledgerservice.ErrMissingExternalRef)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/resources/deposit", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.Deposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestVerifyDepositHandler(t *testing.T) {
	handler, _, ledgerService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful verification",
			body: `{"transaction_id":"ref-1","username":"alice","amount":50,"status":"success"}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					VerifyDeposit(gomock.Any(), "alice", 50.0, "ref-1", true).
					Return(70.0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Failed verification",
			body: `{"transaction_id":"ref-1","username":"alice","amount":50,"status":"failed"}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					VerifyDeposit(gomock.Any(), "alice", 50.0, "ref-1", false).
					Return(20.0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown status value",
			body:         `{"transaction_id":"ref-1","username":"alice","amount":50,"status":"maybe"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"transaction_id":"ref-1","username":"ghost","amount":50,"status":"success"}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					VerifyDeposit(gomock.Any(), "ghost", 50.0, "ref-1", true).
					Return(0.0, ledgerservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Replayed reference",
			body: `{"transaction_id":"ref-1","username":"alice","amount":50,"status":"success"}`,
			prepareMock: func() {
				ledgerService.EXPECT().
					VerifyDeposit(gomock.Any(), "alice", 50.0, "ref-1", true).
					Return(0.0, ledgerservice.ErrDepositReplayed)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/resources/verify-deposit", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.VerifyDeposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestTransactionsHandler(t *testing.T) {
	handler, _, ledgerService := NewMock(t)

	ledgerService.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
		{ID: 1, UserID: 1, Amount: 50.0, Type: "deposit", Status: "completed", ExternalRef: "ref-1"},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/resources/transactions", nil)
	r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
	w := httptest.NewRecorder()
	handler.Transactions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body utils.Response
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Success)
}

func TestGetHandler(t *testing.T) {
	handler, resourceService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Resource found",
			id:   "10",
			prepareMock: func() {
				resourceService.EXPECT().GetResource(gomock.Any(), 10).Return(&domain.Resource{ID: 10, Title: "Algebra notes", Price: 30.0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := requestWithID(http.MethodGet, "/api/resources/"+tt.id, tt.id, nil)
			w := httptest.NewRecorder()
			handler.Get(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
