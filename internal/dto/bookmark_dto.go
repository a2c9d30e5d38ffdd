package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateBookmarkRequest struct {
	Url       string          `json:"url" validate:"required"`
	Title     string          `json:"title"`
	Timestamp *Timestamp      `json:"timestamp"`
	Read      *Timestamp      `json:"read"`
	Tags      []string        `json:"tags"`
	Meta      json.RawMessage `json:"meta"`
	ParentId  *uuid.UUID      `json:"parent_id"`
}

// UpdateBookmarkRequest is a patch: only fields present in the payload
// are applied. Id is listed solely to reject attempts to change it.
type UpdateBookmarkRequest struct {
	Id        Optional[uuid.UUID]       `json:"id"`
	Url       Optional[string]          `json:"url"`
	Title     Optional[string]          `json:"title"`
	Timestamp Optional[Timestamp]       `json:"timestamp"`
	Read      Optional[Timestamp]       `json:"read"`
	Tags      Optional[[]string]        `json:"tags"`
	Meta      Optional[json.RawMessage] `json:"meta"`
	ParentId  Optional[uuid.UUID]       `json:"parent_id"`
}

type ListBookmarksRequest struct {
	Url     string `query:"url"`
	Tags    string `query:"tags"` // comma-separated, all must match
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

type BookmarkResponse struct {
	Id          uuid.UUID       `json:"id"`
	Url         string          `json:"url"`
	Title       string          `json:"title"`
	Timestamp   time.Time       `json:"timestamp"`
	Read        *time.Time      `json:"read"`
	Tags        []string        `json:"tags"`
	Meta        json.RawMessage `json:"meta,omitempty"`
	ParentId    *uuid.UUID      `json:"parent_id"`
	ContentHtml *string         `json:"content_html,omitempty"`
	ContentText *string         `json:"content_text,omitempty"`
	Notes       []*NoteResponse `json:"notes"`
}

type ListBookmarksResponse struct {
	Items    []*BookmarkResponse
	Page     int
	PerPage  int
	LastPage int
}

type ListTagsResponse struct {
	Tags []string `json:"tags"`
}
