package likes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuananh6614/epueducation-sub000/internal/service/reactionservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
)

func NewMock(t *testing.T) (*LikeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestReactHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Reaction applied",
			body: `{"post_id":5,"reaction":"heart"}`,
			prepareMock: func() {
				service.EXPECT().
					React(gomock.Any(), 1, gomock.Any(), gomock.Any(), "heart").
					Return(true, "heart", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reaction toggled off",
			body: `{"post_id":5,"reaction":"heart"}`,
			prepareMock: func() {
				service.EXPECT().
					React(gomock.Any(), 1, gomock.Any(), gomock.Any(), "heart").
					Return(false, "", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Both targets rejected",
			body: `{"post_id":5,"comment_id":9,"reaction":"heart"}`,
			prepareMock: func() {
				service.EXPECT().
					React(gomock.Any(), 1, gomock.Any(), gomock.Any(), "heart").
					Return(false, "", reactionservice.ErrInvalidTarget)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown reaction",
			body: `{"post_id":5,"reaction":"meh"}`,
			prepareMock: func() {
				service.EXPECT().
					React(gomock.Any(), 1, gomock.Any(), gomock.Any(), "meh").
					Return(false, "", reactionservice.ErrUnknownReaction)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Target not found",
			body: `{"post_id":404,"reaction":"heart"}`,
			prepareMock: func() {
				service.EXPECT().
					React(gomock.Any(), 1, gomock.Any(), gomock.Any(), "heart").
					Return(false, "", reactionservice.ErrTargetNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"post_id":5,"reaction":"heart"}`,
			prepareMock: func() {
				service.EXPECT().
					React(gomock.Any(), 1, gomock.Any(), gomock.Any(), "heart").
					Return(false, "", errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/likes", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx(1))
			w := httptest.NewRecorder()
			handler.React(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCheckHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Returns the caller's reaction",
			target: "/api/likes/check?post_id=5",
			prepareMock: func() {
				service.EXPECT().
					GetSummary(gomock.Any(), 1, gomock.Any(), gomock.Any()).
					Return(&reactionservice.Summary{Counts: map[string]int{"heart": 1}, UserReaction: "heart"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid post_id",
			target:       "/api/likes/check?post_id=abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Missing target",
			target: "/api/likes/check",
			prepareMock: func() {
				service.EXPECT().
					GetSummary(gomock.Any(), 1, gomock.Any(), gomock.Any()).
					Return(nil, reactionservice.ErrInvalidTarget)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r = r.WithContext(authedCtx(1))
			w := httptest.NewRecorder()
			handler.Check(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetSummary(gomock.Any(), 0, gomock.Any(), gomock.Any()).
		Return(&reactionservice.Summary{Counts: map[string]int{"like": 3}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/likes/summary?post_id=5", nil)
	w := httptest.NewRecorder()
	handler.Summary(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body utils.Response
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Success)
}
