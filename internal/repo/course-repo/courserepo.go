package courserepo

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

func (r *Repository) List(ctx context.Context) ([]domain.Course, error) {
	query := `
        SELECT id, title, description, thumbnail, created_at
        FROM courses
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list courses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.Thumbnail, &course.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan course row", zap.Error(err))
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	query := `
        SELECT id, title, description, thumbnail, created_at
        FROM courses
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var course domain.Course
	err := row.Scan(&course.ID, &course.Title, &course.Description, &course.Thumbnail, &course.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get course", zap.Error(err))
		return nil, err
	}
	return &course, nil
}

func (r *Repository) FindLessonsByCourseID(ctx context.Context, courseID int) ([]domain.Lesson, error) {
	query := `
        SELECT id, course_id, title, video_url, duration, position
        FROM lessons
        WHERE course_id = $1
        ORDER BY position ASC
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		zap.L().Error("can't get lessons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		err := rows.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.VideoURL, &lesson.Duration, &lesson.Position)
		if err != nil {
			zap.L().Error("can't scan lesson row", zap.Error(err))
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}
