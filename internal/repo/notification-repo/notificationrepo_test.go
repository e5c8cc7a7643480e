package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func intPtr(v int) *int { return &v }

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create system notification",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
					WithArgs(1, 1, pgxmock.AnyArg(), pgxmock.AnyArg(), "system", "Your deposit of 50.00 has been credited").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
					WithArgs(1, 1, pgxmock.AnyArg(), pgxmock.AnyArg(), "system", "Your deposit of 50.00 has been credited").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			n, err := repo.Create(context.Background(), &domain.Notification{
				UserID:  1,
				ActorID: 1,
				Type:    "system",
				Message: "Your deposit of 50.00 has been credited",
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, n.ID)
			}
		})
	}
}

func TestRepository_UpsertLike(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	postID := intPtr(5)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, actor_id, COALESCE(post_id, 0), COALESCE(comment_id, 0), type) WHERE type = 'like'")).
		WithArgs(1, 2, postID, pgxmock.AnyArg(), "bob reacted heart to your post").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))

	n, err := repo.UpsertLike(context.Background(), &domain.Notification{
		UserID:  1,
		ActorID: 2,
		PostID:  postID,
		Message: "bob reacted heart to your post",
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, n.ID)
	assert.Equal(t, "like", n.Type)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns notifications newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "actor_id", "post_id", "comment_id", "type", "message", "is_read", "created_at"}).
					AddRow(2, 1, 2, intPtr(5), nil, "like", "bob reacted heart to your post", false, now).
					AddRow(1, 1, 1, nil, nil, "system", "Your deposit of 50.00 has been credited", true, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			notifications, err := repo.FindByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, notifications, tt.count)
			}
		})
	}
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		ids       []int
		mockSetup func()
		expectErr bool
		affected  int64
	}{
		{
			name: "Owned ids marked read",
			ids:  []int{1, 2},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND id = ANY($2)")).
					WithArgs(1, []int{1, 2}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
			},
			affected: 2,
		},
		{
			name: "Foreign ids filtered by ownership",
			ids:  []int{99},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND id = ANY($2)")).
					WithArgs(1, []int{99}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			affected: 0,
		},
		{
			name: "Database error",
			ids:  []int{1},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND id = ANY($2)")).
					WithArgs(1, []int{1}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.MarkRead(context.Background(), 1, tt.ids)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.affected, affected)
			}
		})
	}
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND NOT is_read")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	affected, err := repo.MarkAllRead(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestRepository_UnreadCount(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Counts unread rows",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
			},
			count: 3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.UnreadCount(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.count, count)
			}
		})
	}
}
