package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Bookmark struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID                   `gorm:"type:uuid;not null;index;index:idx_bookmarks_user_url,priority:1"`
	Url         string                      `gorm:"type:text;not null;index:idx_bookmarks_user_url,priority:2"`
	Title       string                      `gorm:"type:text;not null"`
	Timestamp   time.Time                   `gorm:"not null"`
	Read        *time.Time                  `gorm:"index"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Meta        datatypes.JSON              `gorm:"type:jsonb"`
	ParentId    *uuid.UUID                  `gorm:"type:uuid;index"`
	ContentHtml *string                     `gorm:"type:text"`
	ContentText *string                     `gorm:"type:text"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`

	Parent *Bookmark `gorm:"foreignKey:ParentId"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
