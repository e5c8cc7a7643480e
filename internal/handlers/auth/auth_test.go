package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/service/authservice"
	pkgauth "github.com/tuananh6614/epueducation-sub000/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", "").
					Return(&domain.User{ID: 1, Username: "alice"}, nil)
				service.EXPECT().GenerateToken(1, false).Return("token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing required fields",
			body:         `{"username":"alice"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User already exists",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", "").
					Return(nil, authservice.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", "").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token123", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"username":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice", "secret").
					Return(&domain.User{ID: 1, Username: "alice", IsAdmin: true}, nil)
				service.EXPECT().GenerateToken(1, true).Return("token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"alice","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token generation fails",
			body: `{"username":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice", "secret").
					Return(&domain.User{ID: 1, Username: "alice"}, nil)
				service.EXPECT().GenerateToken(1, false).Return("", errors.New("sign error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns the caller profile",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{ID: 1, Username: "alice", Balance: 42.5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			r = r.WithContext(context.WithValue(context.Background(), pkgauth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.Me(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
