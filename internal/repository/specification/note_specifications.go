package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByBookmarkID selects the notes attached to one bookmark.
type ByBookmarkID struct {
	BookmarkID uuid.UUID
}

func (s ByBookmarkID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("bookmark_id = ?", s.BookmarkID)
}

// ByBookmarkIDs selects the notes attached to a set of bookmarks.
type ByBookmarkIDs struct {
	BookmarkIDs []uuid.UUID
}

func (s ByBookmarkIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("bookmark_id IN ?", s.BookmarkIDs)
}
