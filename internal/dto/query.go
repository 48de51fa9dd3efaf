package dto

import "time"

type CreateQueryRequestDTO struct {
	Title   string `json:"title" example:"Consulta de turnos"`
	Content string `json:"content"`
}

type QueryResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	UserID    int       `json:"user_id" example:"3"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReplyRequestDTO struct {
	Content string `json:"content"`
}

type ReplyResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	QueryID   int       `json:"query_id" example:"1"`
	UserID    int       `json:"user_id" example:"2"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
