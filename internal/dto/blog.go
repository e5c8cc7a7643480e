package dto

import "time"

type PostRequestDTO struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

type PostDTO struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentRequestDTO struct {
	Content string `json:"content" validate:"required"`
}

type CommentDTO struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
