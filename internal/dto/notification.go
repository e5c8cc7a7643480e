package dto

import "time"

type NotificationDTO struct {
	ID        int       `json:"id"`
	ActorID   int       `json:"actor_id"`
	PostID    *int      `json:"post_id,omitempty"`
	CommentID *int      `json:"comment_id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type MarkReadRequestDTO struct {
	IDs []int `json:"ids"`
}

type UnreadCountDTO struct {
	UnreadCount int `json:"unread_count"`
}
