package catalogservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

type Repo interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id int) (*domain.Course, error)
	FindLessonsByCourseID(ctx context.Context, courseID int) ([]domain.Lesson, error)
}

var ErrCourseNotFound = errors.New("course not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list courses", zap.Error(err))
		return nil, err
	}
	return courses, nil
}

func (s *Service) GetCourse(ctx context.Context, id int) (*domain.Course, []domain.Lesson, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get course", zap.Error(err))
		return nil, nil, err
	}
	if course == nil {
		return nil, nil, ErrCourseNotFound
	}

	lessons, err := s.repo.FindLessonsByCourseID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get lessons", zap.Error(err))
		return nil, nil, err
	}
	return course, lessons, nil
}
