package mapper

import (
	"encoding/json"
	"time"

	"linkmark-be/internal/entity"
	"linkmark-be/internal/model"

	"gorm.io/datatypes"
)

type BookmarkMapper struct{}

func NewBookmarkMapper() *BookmarkMapper {
	return &BookmarkMapper{}
}

func (m *BookmarkMapper) ToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	tags := []string(b.Tags)
	if tags == nil {
		tags = []string{}
	}

	var meta json.RawMessage
	if len(b.Meta) > 0 {
		meta = json.RawMessage(b.Meta)
	}

	return &entity.Bookmark{
		Id:          b.Id,
		UserId:      b.UserId,
		Url:         b.Url,
		Title:       b.Title,
		Timestamp:   b.Timestamp,
		Read:        b.Read,
		Tags:        tags,
		Meta:        meta,
		ParentId:    b.ParentId,
		ContentHtml: b.ContentHtml,
		ContentText: b.ContentText,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *BookmarkMapper) ToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}

	var meta datatypes.JSON
	if len(b.Meta) > 0 {
		meta = datatypes.JSON(b.Meta)
	}

	return &model.Bookmark{
		Id:          b.Id,
		UserId:      b.UserId,
		Url:         b.Url,
		Title:       b.Title,
		Timestamp:   b.Timestamp,
		Read:        b.Read,
		Tags:        datatypes.NewJSONSlice(tags),
		Meta:        meta,
		ParentId:    b.ParentId,
		ContentHtml: b.ContentHtml,
		ContentText: b.ContentText,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *BookmarkMapper) ToEntities(bookmarks []*model.Bookmark) []*entity.Bookmark {
	entities := make([]*entity.Bookmark, len(bookmarks))
	for i, b := range bookmarks {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
