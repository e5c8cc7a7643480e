package dto

type LikeRequestDTO struct {
	PostID    *int   `json:"post_id,omitempty" example:"1"`
	CommentID *int   `json:"comment_id,omitempty"`
	Reaction  string `json:"reaction" example:"heart"`
}

type LikeResponseDTO struct {
	Liked    bool   `json:"liked"`
	Reaction string `json:"reaction,omitempty"`
}

type ReactionSummaryDTO struct {
	Counts       map[string]int `json:"counts"`
	UserReaction string         `json:"user_reaction,omitempty"`
}
