package posts

import "time"

const (
	DefaultCategory = "General"
	DefaultAuthor   = "Automatrix Team"
)

type CreatePostRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
	Published   bool   `json:"published"`
	Category    string `json:"category"`
	Author      string `json:"author"`
}

// UpdatePostRequest replaces the whole mutable field set: fields absent from
// the body are written back as their defaults, not preserved. The admin form
// always submits the full record, so the contract stays a plain overwrite.
type UpdatePostRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Published   bool   `json:"published"`
	Category    string `json:"category"`
	Author      string `json:"author"`
}

type DeletePostRequest struct {
	ID string `json:"id"`
}

type PostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Published   bool      `json:"published"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
