package blogservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
)

type PostRepo interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindCommentsByPostID(ctx context.Context, postID int) ([]domain.Comment, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyContent = errors.New("content is required")
)

type Service struct {
	postRepo         PostRepo
	userRepo         UserRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(postRepo PostRepo, userRepo UserRepo, notificationRepo NotificationRepo, txManager pg.TXManager) *Service {
	return &Service{
		postRepo:         postRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

func (s *Service) CreatePost(ctx context.Context, userID int, title, content, image string) (*domain.Post, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	post := &domain.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
		Image:   image,
	}
	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		zap.L().Error("can't create post", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list posts", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (s *Service) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get post", zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// CreateComment writes the comment and the owner's notification in one
// transaction. Commenting on your own post stays silent.
func (s *Service) CreateComment(ctx context.Context, userID, postID int, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	var comment *domain.Comment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}

		comment, err = s.postRepo.CreateComment(ctx, &domain.Comment{
			PostID:  postID,
			UserID:  userID,
			Content: content,
		})
		if err != nil {
			return err
		}

		if post.UserID == userID {
			return nil
		}

		actor, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		actorName := "Someone"
		if actor != nil {
			actorName = actor.Username
		}

		_, err = s.notificationRepo.Create(ctx, &domain.Notification{
			UserID:    post.UserID,
			ActorID:   userID,
			PostID:    &postID,
			CommentID: &comment.ID,
			Type:      "comment",
			Message:   fmt.Sprintf("%s commented on your post", actorName),
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't create comment", zap.Int("post_id", postID), zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (s *Service) GetComments(ctx context.Context, postID int) ([]domain.Comment, error) {
	comments, err := s.postRepo.FindCommentsByPostID(ctx, postID)
	if err != nil {
		zap.L().Error("failed to get comments", zap.Error(err))
		return nil, err
	}
	return comments, nil
}
