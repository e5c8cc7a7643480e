package notificationrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, actor_id, post_id, comment_id, type, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, n.UserID, n.ActorID, n.PostID, n.CommentID, n.Type, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

// UpsertLike refreshes the existing like notification for the same
// (owner, actor, target) edge instead of stacking a new row per reaction.
func (r *Repository) UpsertLike(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, actor_id, post_id, comment_id, type, message)
		VALUES ($1, $2, $3, $4, 'like', $5)
		ON CONFLICT (user_id, actor_id, COALESCE(post_id, 0), COALESCE(comment_id, 0), type) WHERE type = 'like'
		DO UPDATE SET message = EXCLUDED.message, is_read = FALSE, created_at = NOW()
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, n.UserID, n.ActorID, n.PostID, n.CommentID, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		zap.L().Error("can't upsert like notification", zap.Error(err))
		return nil, err
	}
	n.Type = "like"
	return n, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, actor_id, post_id, comment_id, type, message, is_read, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.ActorID, &n.PostID, &n.CommentID, &n.Type, &n.Message, &n.IsRead, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead only touches rows owned by userID; ids belonging to other users
// are dropped by the predicate, not reported as errors.
func (r *Repository) MarkRead(ctx context.Context, userID int, ids []int) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND id = ANY($2)
	`
	tag, err := r.db.Exec(ctx, query, userID, ids)
	if err != nil {
		zap.L().Error("can't mark notifications read", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND NOT is_read
	`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't mark all notifications read", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UnreadCount(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM notifications
        WHERE user_id = $1 AND NOT is_read
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count unread notifications", zap.Error(err))
		return 0, err
	}
	return count, nil
}
