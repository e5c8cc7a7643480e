package likerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Find(ctx context.Context, userID int, postID, commentID *int) (*domain.Like, error) {
	query := `
        SELECT id, user_id, post_id, comment_id, reaction, created_at
        FROM likes
        WHERE user_id = $1 AND post_id IS NOT DISTINCT FROM $2 AND comment_id IS NOT DISTINCT FROM $3
    `
	row := r.db.QueryRow(ctx, query, userID, postID, commentID)
	var like domain.Like
	err := row.Scan(&like.ID, &like.UserID, &like.PostID, &like.CommentID, &like.Reaction, &like.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find like", zap.Error(err))
		return nil, err
	}
	return &like, nil
}

func (r *Repository) Create(ctx context.Context, like *domain.Like) (*domain.Like, error) {
	query := `
		INSERT INTO likes (user_id, post_id, comment_id, reaction)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, like.UserID, like.PostID, like.CommentID, like.Reaction).
		Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		zap.L().Error("can't save like", zap.Error(err))
		return nil, err
	}
	return like, nil
}

func (r *Repository) UpdateReaction(ctx context.Context, id int, reaction string) error {
	query := `
		UPDATE likes
		SET reaction = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, reaction, id)
	if err != nil {
		zap.L().Error("can't update like reaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM likes
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete like", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByReaction(ctx context.Context, postID, commentID *int) (map[string]int, error) {
	query := `
        SELECT reaction, COUNT(*)
        FROM likes
        WHERE post_id IS NOT DISTINCT FROM $1 AND comment_id IS NOT DISTINCT FROM $2
        GROUP BY reaction
    `
	rows, err := r.db.Query(ctx, query, postID, commentID)
	if err != nil {
		zap.L().Error("can't count reactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reaction string
		var count int
		if err := rows.Scan(&reaction, &count); err != nil {
			zap.L().Error("can't scan reaction count row", zap.Error(err))
			return nil, err
		}
		counts[reaction] = count
	}
	return counts, nil
}
