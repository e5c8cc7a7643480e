package notificationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetNotifications(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name:   "Retrieve notifications successfully",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Notification{
					{ID: 1, UserID: 1, Type: "like", Message: "bob reacted like to your post"},
					{ID: 2, UserID: 1, Type: "system", Message: "Your deposit of 50.00 has been credited"},
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name:   "Error retrieving notifications",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			notifications, err := service.GetNotifications(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, notifications, tt.expectedCount)
			}
		})
	}
}

func TestMarkRead(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name           string
		userID         int
		ids            []int
		prepareMock    func()
		expectedUnread int
		expectedError  error
	}{
		{
			name:   "Marks owned ids and returns remaining unread",
			userID: 1,
			ids:    []int{1, 2, 3},
			prepareMock: func() {
				repo.EXPECT().MarkRead(gomock.Any(), 1, []int{1, 2, 3}).Return(int64(3), nil)
				repo.EXPECT().UnreadCount(gomock.Any(), 1).Return(2, nil)
			},
			expectedUnread: 2,
		},
		{
			name:   "Foreign ids affect nothing",
			userID: 1,
			ids:    []int{99},
			prepareMock: func() {
				repo.EXPECT().MarkRead(gomock.Any(), 1, []int{99}).Return(int64(0), nil)
				repo.EXPECT().UnreadCount(gomock.Any(), 1).Return(5, nil)
			},
			expectedUnread: 5,
		},
		{
			name:          "Empty id list is rejected",
			userID:        1,
			ids:           nil,
			expectedError: ErrEmptyIDs,
		},
		{
			name:   "Error marking read",
			userID: 1,
			ids:    []int{1},
			prepareMock: func() {
				repo.EXPECT().MarkRead(gomock.Any(), 1, []int{1}).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			unread, err := service.MarkRead(context.Background(), tt.userID, tt.ids)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUnread, unread)
			}
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedUnread int
		expectedError  error
	}{
		{
			name:   "Marks everything and reports zero unread",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().MarkAllRead(gomock.Any(), 1).Return(int64(4), nil)
				repo.EXPECT().UnreadCount(gomock.Any(), 1).Return(0, nil)
			},
			expectedUnread: 0,
		},
		{
			name:   "Error marking all read",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().MarkAllRead(gomock.Any(), 1).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			unread, err := service.MarkAllRead(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUnread, unread)
			}
		})
	}
}

func TestUnreadCount(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name:          "Returns the unread count",
			userID:        1,
			prepareMock:   func() { repo.EXPECT().UnreadCount(gomock.Any(), 1).Return(3, nil) },
			expectedCount: 3,
		},
		{
			name:          "Error counting unread",
			userID:        1,
			prepareMock:   func() { repo.EXPECT().UnreadCount(gomock.Any(), 1).Return(0, errors.New("db error")) },
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			count, err := service.UnreadCount(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}
		})
	}
}
