package specification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUrl matches the stored canonical URL exactly. Callers canonicalize
// the filter value first so equality works across tracking-parameter
// variants.
type ByUrl struct {
	Url string
}

func (s ByUrl) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("url = ?", s.Url)
}

// HasAllTags keeps bookmarks containing every required tag, using
// jsonb containment on the tags column.
type HasAllTags struct {
	Tags []string
}

func (s HasAllTags) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Tags) == 0 {
		return db
	}
	required, err := json.Marshal(s.Tags)
	if err != nil {
		return db.Where("1 = 0")
	}
	return db.Where("tags @> ?", string(required))
}

// ByParentID selects the direct children of a bookmark.
type ByParentID struct {
	ParentID uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentID)
}

// ReadNotNull keeps bookmarks that have been marked read.
type ReadNotNull struct{}

func (s ReadNotNull) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("read IS NOT NULL")
}

// ReadAfter keeps bookmarks read strictly after the given instant.
type ReadAfter struct {
	T time.Time
}

func (s ReadAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("read > ?", s.T)
}

// ReadSince keeps bookmarks read at or after the given instant, for
// calendar windows whose start belongs to the window.
type ReadSince struct {
	T time.Time
}

func (s ReadSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("read >= ?", s.T)
}

// ReadingOrder is the listing order: unread first, then most recently
// read, then newest reference time.
type ReadingOrder struct{}

func (s ReadingOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("(read IS NULL) DESC, read DESC, timestamp DESC")
}
