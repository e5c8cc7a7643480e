package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/dto"
	"github.com/tuananh6614/epueducation-sub000/internal/service/notificationservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
)

type Service interface {
	GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID int, ids []int) (int, error)
	MarkAllRead(ctx context.Context, userID int) (int, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List godoc
//
//	@Summary	Get the caller's notifications, newest first
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notifications, err := h.notificationService.GetNotifications(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NotificationDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NotificationDTO{
			ID:        n.ID,
			ActorID:   n.ActorID,
			PostID:    n.PostID,
			CommentID: n.CommentID,
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark notifications as read
//	@Description	Ids not owned by the caller are silently dropped
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MarkReadRequestDTO	true	"Notification ids"
//	@Success		200		{object}	utils.Response	"Remaining unread count"
//	@Failure		400		{object}	utils.Response	"Empty id list"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.MarkReadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	unread, err := h.notificationService.MarkRead(r.Context(), userID, req.IDs)
	if err != nil {
		if errors.Is(err, notificationservice.ErrEmptyIDs) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountDTO{UnreadCount: unread})
}

// MarkAllRead godoc
//
//	@Summary	Mark every notification as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response	"Remaining unread count"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	unread, err := h.notificationService.MarkAllRead(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountDTO{UnreadCount: unread})
}

// UnreadCount godoc
//
//	@Summary	Get the unread notification count
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	count, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountDTO{UnreadCount: count})
}
