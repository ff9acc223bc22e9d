package domain

import "time"

// Document is a stored generated project document owned by a user. It is
// storage-agnostic and shared between the repository and HTTP layers.
type Document struct {
	PublicID    string    `json:"public_id"`
	ProjectName string    `json:"project_name"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
