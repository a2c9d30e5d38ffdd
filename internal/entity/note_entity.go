package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	BookmarkId uuid.UUID
	UserId     uuid.UUID
	Text       string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
