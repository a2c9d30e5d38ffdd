package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeBookmarkCreated  = "BOOKMARK_CREATED"
	TypeBookmarkEnriched = "BOOKMARK_ENRICHED"
)

// Event is the contract every bus message implements.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string               { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time            { return e.OccurredAt }

// NewBookmarkCreated announces a durably created bookmark to the
// enrichment workers. The canonical URL travels with the id so workers
// never need a read back into the store.
func NewBookmarkCreated(id uuid.UUID, userId uuid.UUID, url string) Event {
	return BaseEvent{
		Type: TypeBookmarkCreated,
		Data: map[string]interface{}{
			"bookmark_id": id.String(),
			"user_id":     userId.String(),
			"url":         url,
		},
		OccurredAt: time.Now().UTC(),
	}
}
