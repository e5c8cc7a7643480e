package reactionservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
)

type LikeRepo interface {
	Find(ctx context.Context, userID int, postID, commentID *int) (*domain.Like, error)
	Create(ctx context.Context, like *domain.Like) (*domain.Like, error)
	UpdateReaction(ctx context.Context, id int, reaction string) error
	Delete(ctx context.Context, id int) error
	CountByReaction(ctx context.Context, postID, commentID *int) (map[string]int, error)
}

type BlogRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Post, error)
	GetCommentByID(ctx context.Context, id int) (*domain.Comment, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

type NotificationRepo interface {
	UpsertLike(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrInvalidTarget   = errors.New("exactly one of post_id or comment_id is required")
	ErrUnknownReaction = errors.New("unknown reaction")
	ErrTargetNotFound  = errors.New("target not found")
)

var reactionKinds = map[string]struct{}{
	"like":  {},
	"heart": {},
	"haha":  {},
	"wow":   {},
	"sad":   {},
	"angry": {},
}

// Summary is the per-kind reaction tally for one target, plus the caller's
// own reaction when known.
type Summary struct {
	Counts       map[string]int
	UserReaction string
}

type Service struct {
	likeRepo         LikeRepo
	blogRepo         BlogRepo
	userRepo         UserRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(likeRepo LikeRepo, blogRepo BlogRepo, userRepo UserRepo, notificationRepo NotificationRepo, txManager pg.TXManager) *Service {
	return &Service{
		likeRepo:         likeRepo,
		blogRepo:         blogRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// React applies one state transition for (user, target): no reaction becomes
// the given kind, the same kind toggles the reaction off, a different kind
// replaces it. The target's owner is notified on every transition that leaves
// a reaction in place, never about their own actions, and never more than one
// notification row per (owner, actor, target) edge.
func (s *Service) React(ctx context.Context, userID int, postID, commentID *int, kind string) (bool, string, error) {
	if (postID == nil) == (commentID == nil) {
		return false, "", ErrInvalidTarget
	}
	if _, ok := reactionKinds[kind]; !ok {
		return false, "", ErrUnknownReaction
	}

	var liked bool
	var current string

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ownerID, target, err := s.resolveOwner(ctx, postID, commentID)
		if err != nil {
			return err
		}

		existing, err := s.likeRepo.Find(ctx, userID, postID, commentID)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			like := &domain.Like{
				UserID:    userID,
				PostID:    postID,
				CommentID: commentID,
				Reaction:  kind,
			}
			if _, err := s.likeRepo.Create(ctx, like); err != nil {
				return err
			}
			liked, current = true, kind

		case existing.Reaction == kind:
			// Same kind again means toggle off. Existing notifications stay.
			if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
				return err
			}
			return nil

		default:
			if err := s.likeRepo.UpdateReaction(ctx, existing.ID, kind); err != nil {
				return err
			}
			liked, current = true, kind
		}

		if ownerID == userID {
			return nil
		}
		return s.notifyOwner(ctx, userID, ownerID, postID, commentID, target, kind)
	})
	if err != nil {
		zap.L().Error("reaction failed", zap.Int("user_id", userID), zap.Error(err))
		return false, "", err
	}
	return liked, current, nil
}

func (s *Service) resolveOwner(ctx context.Context, postID, commentID *int) (int, string, error) {
	if postID != nil {
		post, err := s.blogRepo.GetByID(ctx, *postID)
		if err != nil {
			return 0, "", err
		}
		if post == nil {
			return 0, "", ErrTargetNotFound
		}
		return post.UserID, "post", nil
	}

	comment, err := s.blogRepo.GetCommentByID(ctx, *commentID)
	if err != nil {
		return 0, "", err
	}
	if comment == nil {
		return 0, "", ErrTargetNotFound
	}
	return comment.UserID, "comment", nil
}

func (s *Service) notifyOwner(ctx context.Context, actorID, ownerID int, postID, commentID *int, target, kind string) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	actorName := "Someone"
	if actor != nil {
		actorName = actor.Username
	}

	notification := &domain.Notification{
		UserID:    ownerID,
		ActorID:   actorID,
		PostID:    postID,
		CommentID: commentID,
		Type:      "like",
		Message:   fmt.Sprintf("%s reacted %s to your %s", actorName, kind, target),
	}
	_, err = s.notificationRepo.UpsertLike(ctx, notification)
	return err
}

// GetSummary is a pure read, safe without authentication; pass userID 0 when
// the caller is anonymous.
func (s *Service) GetSummary(ctx context.Context, userID int, postID, commentID *int) (*Summary, error) {
	if (postID == nil) == (commentID == nil) {
		return nil, ErrInvalidTarget
	}

	counts, err := s.likeRepo.CountByReaction(ctx, postID, commentID)
	if err != nil {
		zap.L().Error("failed to count reactions", zap.Error(err))
		return nil, err
	}

	summary := &Summary{Counts: counts}
	if userID != 0 {
		like, err := s.likeRepo.Find(ctx, userID, postID, commentID)
		if err != nil {
			return nil, err
		}
		if like != nil {
			summary.UserReaction = like.Reaction
		}
	}
	return summary, nil
}
