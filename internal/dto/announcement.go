package dto

import "time"

type CreateAnnouncementRequestDTO struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	DateDescription string `json:"date_description" example:"Todo noviembre"`
}

type AnnouncementResponseDTO struct {
	ID              int       `json:"id" example:"1"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	DateDescription string    `json:"date_description"`
	UserID          *int      `json:"user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
