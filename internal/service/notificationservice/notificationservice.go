package notificationservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

type Repo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID int, ids []int) (int64, error)
	MarkAllRead(ctx context.Context, userID int) (int64, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
}

// ErrEmptyIDs rejects an empty id list up front instead of letting it reach
// the query.
var ErrEmptyIDs = errors.New("notification ids are required")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets the read flag on the caller's notifications among ids. Ids
// the caller does not own are silently dropped. Returns the remaining unread
// count.
func (s *Service) MarkRead(ctx context.Context, userID int, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}

	affected, err := s.repo.MarkRead(ctx, userID, ids)
	if err != nil {
		zap.L().Error("failed to mark notifications read", zap.Error(err))
		return 0, err
	}
	if affected == 0 {
		zap.L().Debug("no notifications matched ownership filter", zap.Int("user_id", userID))
	}

	return s.repo.UnreadCount(ctx, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) (int, error) {
	if _, err := s.repo.MarkAllRead(ctx, userID); err != nil {
		zap.L().Error("failed to mark all notifications read", zap.Error(err))
		return 0, err
	}
	return s.repo.UnreadCount(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID int) (int, error) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count unread notifications", zap.Error(err))
		return 0, err
	}
	return count, nil
}
