package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Avatar       string    `db:"avatar"`
	Balance      float64   `db:"balance"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Resource struct {
	ID            int       `db:"id"`
	AuthorID      int       `db:"author_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	FileName      string    `db:"file_name"`
	Thumbnail     string    `db:"thumbnail"`
	ResourceType  string    `db:"resource_type"`
	Price         float64   `db:"price"`
	DownloadCount int       `db:"download_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type Purchase struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	ResourceID int       `db:"resource_id"`
	PricePaid  float64   `db:"price_paid"`
	CreatedAt  time.Time `db:"created_at"`
}

type Transaction struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Amount      float64   `db:"amount"`
	Type        string    `db:"type"`
	Status      string    `db:"status"`
	RelatedID   *int      `db:"related_id"`
	ExternalRef string    `db:"external_ref"`
	Metadata    []byte    `db:"metadata"`
	CreatedAt   time.Time `db:"created_at"`
}

type Post struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}

type Comment struct {
	ID        int       `db:"id"`
	PostID    int       `db:"post_id"`
	UserID    int       `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// Like targets exactly one of PostID or CommentID.
type Like struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	PostID    *int      `db:"post_id"`
	CommentID *int      `db:"comment_id"`
	Reaction  string    `db:"reaction"`
	CreatedAt time.Time `db:"created_at"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ActorID   int       `db:"actor_id"`
	PostID    *int      `db:"post_id"`
	CommentID *int      `db:"comment_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type Course struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Thumbnail   string    `db:"thumbnail"`
	CreatedAt   time.Time `db:"created_at"`
}

type Lesson struct {
	ID       int    `db:"id"`
	CourseID int    `db:"course_id"`
	Title    string `db:"title"`
	VideoURL string `db:"video_url"`
	Duration int    `db:"duration"`
	Position int    `db:"position"`
}
