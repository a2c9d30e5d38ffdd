package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookmarkId uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Text       string         `gorm:"type:text;not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
