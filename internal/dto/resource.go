package dto

import "time"

type ResourceDTO struct {
	ID            int       `json:"id"`
	AuthorID      int       `json:"author_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	ResourceType  string    `json:"resource_type"`
	Price         float64   `json:"price"`
	DownloadCount int       `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
}
