package likerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	postID := intPtr(5)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Like
	}{
		{
			name: "Like found on a post",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "post_id", "comment_id", "reaction", "created_at"}).
					AddRow(3, 2, postID, nil, "heart", now)
				mock.ExpectQuery(regexp.QuoteMeta("post_id IS NOT DISTINCT FROM $2 AND comment_id IS NOT DISTINCT FROM $3")).
					WithArgs(2, postID, pgxmock.AnyArg()).
					WillReturnRows(rows)
			},
			result: &domain.Like{
				ID:        3,
				UserID:    2,
				PostID:    postID,
				Reaction:  "heart",
				CreatedAt: now,
			},
		},
		{
			name: "No like yet",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM likes")).
					WithArgs(2, postID, pgxmock.AnyArg()).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM likes")).
					WithArgs(2, postID, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Find(context.Background(), 2, postID, nil)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	postID := intPtr(5)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO likes")).
		WithArgs(2, postID, pgxmock.AnyArg(), "heart").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	like, err := repo.Create(context.Background(), &domain.Like{UserID: 2, PostID: postID, Reaction: "heart"})
	assert.NoError(t, err)
	assert.Equal(t, 3, like.ID)
	assert.Equal(t, now, like.CreatedAt)
}

func TestRepository_UpdateReaction(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Reaction updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE likes")).
					WithArgs("wow", 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE likes")).
					WithArgs("wow", 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateReaction(context.Background(), 3, "wow")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM likes")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
}

func TestRepository_CountByReaction(t *testing.T) {
	repo, mock := NewMock(t)
	postID := intPtr(5)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		counts    map[string]int
	}{
		{
			name: "Counts grouped by reaction",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"reaction", "count"}).
					AddRow("like", 3).
					AddRow("heart", 1)
				mock.ExpectQuery(regexp.QuoteMeta("GROUP BY reaction")).
					WithArgs(postID, pgxmock.AnyArg()).
					WillReturnRows(rows)
			},
			counts: map[string]int{"like": 3, "heart": 1},
		},
		{
			name: "No reactions yet",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("GROUP BY reaction")).
					WithArgs(postID, pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"reaction", "count"}))
			},
			counts: map[string]int{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("GROUP BY reaction")).
					WithArgs(postID, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			counts, err := repo.CountByReaction(context.Background(), postID, nil)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.counts, counts)
			}
		})
	}
}
