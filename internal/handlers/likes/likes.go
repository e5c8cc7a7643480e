package likes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tuananh6614/epueducation-sub000/internal/dto"
	"github.com/tuananh6614/epueducation-sub000/internal/service/reactionservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
)

type Service interface {
	React(ctx context.Context, userID int, postID, commentID *int, kind string) (bool, string, error)
	GetSummary(ctx context.Context, userID int, postID, commentID *int) (*reactionservice.Summary, error)
}

type LikeHandler struct {
	reactionService Service
}

func New(reactionService Service) *LikeHandler {
	return &LikeHandler{
		reactionService: reactionService,
	}
}

// React godoc
//
//	@Summary		React to a post or comment
//	@Description	Submitting the same reaction again toggles it off; a different one replaces it
//	@Tags			Likes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LikeRequestDTO	true	"Reaction payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid reaction request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Target not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/likes [post]
func (h *LikeHandler) React(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.LikeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	liked, reaction, err := h.reactionService.React(r.Context(), userID, req.PostID, req.CommentID, req.Reaction)
	if err != nil {
		switch {
		case errors.Is(err, reactionservice.ErrInvalidTarget), errors.Is(err, reactionservice.ErrUnknownReaction):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reactionservice.ErrTargetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LikeResponseDTO{
		Liked:    liked,
		Reaction: reaction,
	})
}

// Check godoc
//
//	@Summary	Get the caller's reaction and the per-kind tally
//	@Tags		Likes
//	@Security	BearerAuth
//	@Produce	json
//	@Param		post_id		query		int	false	"Post ID"
//	@Param		comment_id	query		int	false	"Comment ID"
//	@Success	200			{object}	utils.Response
//	@Failure	400			{object}	utils.Response	"Invalid target"
//	@Failure	401			{object}	utils.Response	"User not authorized"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/likes/check [get]
func (h *LikeHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	h.respondSummary(w, r, userID)
}

// Summary godoc
//
//	@Summary	Get the per-kind reaction tally
//	@Tags		Likes
//	@Produce	json
//	@Param		post_id		query		int	false	"Post ID"
//	@Param		comment_id	query		int	false	"Comment ID"
//	@Success	200			{object}	utils.Response
//	@Failure	400			{object}	utils.Response	"Invalid target"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/likes/summary [get]
func (h *LikeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.respondSummary(w, r, 0)
}

func (h *LikeHandler) respondSummary(w http.ResponseWriter, r *http.Request, userID int) {
	postID, err := queryIntPtr(r, "post_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post_id")
		return
	}
	commentID, err := queryIntPtr(r, "comment_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment_id")
		return
	}

	summary, err := h.reactionService.GetSummary(r.Context(), userID, postID, commentID)
	if err != nil {
		if errors.Is(err, reactionservice.ErrInvalidTarget) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReactionSummaryDTO{
		Counts:       summary.Counts,
		UserReaction: summary.UserReaction,
	})
}

func queryIntPtr(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
