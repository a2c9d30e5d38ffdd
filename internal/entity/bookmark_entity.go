package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Url         string
	Title       string
	Timestamp   time.Time
	Read        *time.Time
	Tags        []string
	Meta        json.RawMessage
	ParentId    *uuid.UUID
	ContentHtml *string
	ContentText *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// HasAllTags reports whether every tag in required is present.
// An empty required set matches anything.
func (b *Bookmark) HasAllTags(required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(b.Tags))
	for _, t := range b.Tags {
		set[t] = struct{}{}
	}
	for _, t := range required {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
