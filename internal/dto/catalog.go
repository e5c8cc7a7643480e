package dto

import "time"

type CourseDTO struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Lessons     []LessonDTO `json:"lessons,omitempty"`
}

type LessonDTO struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
	Duration int    `json:"duration"`
	Position int    `json:"position"`
}
