package dto

import "github.com/google/uuid"

// EnrichBookmarkMessage travels over the in-process bus after a
// bookmark commit; the consumer forwards it to the external workers.
type EnrichBookmarkMessage struct {
	BookmarkId uuid.UUID `json:"bookmark_id"`
	UserId     uuid.UUID `json:"user_id"`
	Url        string    `json:"url"`
}

// BookmarkEnrichedMessage is pushed back by an enrichment worker with
// the fetched article content. These fields bypass the user-facing
// update validation; they are not user-editable.
type BookmarkEnrichedMessage struct {
	BookmarkId  uuid.UUID `json:"bookmark_id"`
	Title       string    `json:"title"`
	ContentHtml string    `json:"content_html"`
	ContentText string    `json:"content_text"`
}
