package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Text string `json:"text" validate:"required"`
}

type UpdateNoteRequest struct {
	Text string `json:"text" validate:"required"`
}

type NoteResponse struct {
	Id         uuid.UUID  `json:"id"`
	BookmarkId uuid.UUID  `json:"bookmark_id"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
