package courses

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/dto"
	"github.com/tuananh6614/epueducation-sub000/internal/service/catalogservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
)

type Service interface {
	GetCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id int) (*domain.Course, []domain.Lesson, error)
}

type CourseHandler struct {
	catalogService Service
}

func New(catalogService Service) *CourseHandler {
	return &CourseHandler{
		catalogService: catalogService,
	}
}

// List godoc
//
//	@Summary	List courses
//	@Tags		Courses
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalogService.GetCourses(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CourseDTO, len(courses))
	for i, course := range courses {
		response[i] = dto.CourseDTO{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Thumbnail:   course.Thumbnail,
			CreatedAt:   course.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get a course with its lessons
//	@Tags		Courses
//	@Produce	json
//	@Param		id	path		int	true	"Course ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Course not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/courses/{id} [get]
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}

	course, lessons, err := h.catalogService.GetCourse(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCourseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CourseDTO{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Thumbnail:   course.Thumbnail,
		CreatedAt:   course.CreatedAt,
		Lessons:     make([]dto.LessonDTO, len(lessons)),
	}
	for i, lesson := range lessons {
		response.Lessons[i] = dto.LessonDTO{
			ID:       lesson.ID,
			Title:    lesson.Title,
			VideoURL: lesson.VideoURL,
			Duration: lesson.Duration,
			Position: lesson.Position,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
