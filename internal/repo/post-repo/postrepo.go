package postrepo

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

func (r *Repository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	query := `
		INSERT INTO posts (user_id, title, content, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, post.UserID, post.Title, post.Content, post.Image).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		zap.L().Error("can't save post", zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Post, error) {
	query := `
        SELECT id, user_id, title, content, image, created_at
        FROM posts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var post domain.Post
	err := row.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.Image, &post.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get post", zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Post, error) {
	query := `
        SELECT id, user_id, title, content, image, created_at
        FROM posts
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list posts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.Image, &post.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan post row", zap.Error(err))
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, comment.PostID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *Repository) GetCommentByID(ctx context.Context, id int) (*domain.Comment, error) {
	query := `
        SELECT id, post_id, user_id, content, created_at
        FROM comments
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var comment domain.Comment
	err := row.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get comment", zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

func (r *Repository) FindCommentsByPostID(ctx context.Context, postID int) ([]domain.Comment, error) {
	query := `
        SELECT id, post_id, user_id, content, created_at
        FROM comments
        WHERE post_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		zap.L().Error("can't get comments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan comment row", zap.Error(err))
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
