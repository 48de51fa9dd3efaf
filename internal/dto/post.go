package dto

import "time"

type CreatePostRequestDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Alias   string `json:"alias,omitempty" example:"anonimo42"`
}

type PostResponseDTO struct {
	ID       int       `json:"id" example:"1"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	PostedAt time.Time `json:"posted_at"`
	AuthorID *int      `json:"author_id,omitempty"`
	Alias    string    `json:"alias,omitempty"`
}
