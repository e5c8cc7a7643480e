package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/dto"
	"github.com/tuananh6614/epueducation-sub000/internal/service/blogservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
)

type Service interface {
	CreatePost(ctx context.Context, userID int, title, content, image string) (*domain.Post, error)
	GetPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id int) (*domain.Post, error)
	CreateComment(ctx context.Context, userID, postID int, content string) (*domain.Comment, error)
	GetComments(ctx context.Context, postID int) ([]domain.Comment, error)
}

type PostHandler struct {
	blogService Service
}

func New(blogService Service) *PostHandler {
	return &PostHandler{
		blogService: blogService,
	}
}

// Create godoc
//
//	@Summary	Create a blog post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PostRequestDTO	true	"Post payload"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Invalid post payload"
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.blogService.CreatePost(r.Context(), userID, req.Title, req.Content, req.Image)
	if err != nil {
		if errors.Is(err, blogservice.ErrEmptyTitle) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPostDTO(post))
}

// List godoc
//
//	@Summary	List posts, newest first
//	@Tags		Posts
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.GetPosts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PostDTO, len(posts))
	for i, post := range posts {
		response[i] = toPostDTO(&post)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get one post
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Post not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/posts/{id} [get]
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, err := h.blogService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, blogservice.ErrPostNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPostDTO(post))
}

// CreateComment godoc
//
//	@Summary	Comment on a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Post ID"
//	@Param		request	body		dto.CommentRequestDTO	true	"Comment payload"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Invalid comment payload"
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Failure	404		{object}	utils.Response	"Post not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/posts/{id}/comments [post]
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req dto.CommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.blogService.CreateComment(r.Context(), userID, postID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrEmptyContent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, blogservice.ErrPostNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
}

// ListComments godoc
//
//	@Summary	List comments of a post, oldest first
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	utils.Response
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/posts/{id}/comments [get]
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := h.blogService.GetComments(r.Context(), postID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CommentDTO, len(comments))
	for i, comment := range comments {
		response[i] = dto.CommentDTO{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPostDTO(post *domain.Post) dto.PostDTO {
	return dto.PostDTO{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
	}
}
