package contract

import (
	"context"

	"linkmark-be/internal/entity"
	"linkmark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Update(ctx context.Context, bookmark *entity.Bookmark) error
	// UpdateContent is the enrichment write path: it touches only the
	// fetched title and content columns, outside the user-facing
	// validation rules.
	UpdateContent(ctx context.Context, id uuid.UUID, title string, contentHtml, contentText *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// ParentPairs returns id -> parent id for one user's bookmarks,
	// the arena the tree manager runs cycle checks against.
	ParentPairs(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]*uuid.UUID, error)
	// ListTags returns the deduplicated union of one user's tags.
	ListTags(ctx context.Context, userId uuid.UUID) ([]string, error)
}
