package implementation

import (
	"context"
	"errors"

	"linkmark-be/internal/entity"
	"linkmark-be/internal/mapper"
	"linkmark-be/internal/model"
	"linkmark-be/internal/repository/contract"
	"linkmark-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookmarkMapper
}

func NewBookmarkRepository(db *gorm.DB) contract.BookmarkRepository {
	return &BookmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookmarkMapper(),
	}
}

func (r *BookmarkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	m := r.mapper.ToModel(bookmark)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bookmark = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookmarkRepositoryImpl) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	m := r.mapper.ToModel(bookmark)
	// A struct update would skip nil fields, so read/meta/parent could
	// never be cleared through it. Map updates always write the column.
	err := r.db.WithContext(ctx).Model(&model.Bookmark{Id: m.Id}).
		Updates(map[string]interface{}{
			"url":       m.Url,
			"title":     m.Title,
			"timestamp": m.Timestamp,
			"read":      m.Read,
			"tags":      m.Tags,
			"meta":      m.Meta,
			"parent_id": m.ParentId,
		}).Error
	if err != nil {
		return err
	}
	return nil
}

func (r *BookmarkRepositoryImpl) UpdateContent(ctx context.Context, id uuid.UUID, title string, contentHtml, contentText *string) error {
	updates := map[string]interface{}{
		"content_html": contentHtml,
		"content_text": contentText,
	}
	if title != "" {
		updates["title"] = title
	}
	return r.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Bookmark{}, id).Error
}

func (r *BookmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	var m model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookmarkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var models []*model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookmarkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Bookmark{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookmarkRepositoryImpl) ParentPairs(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	type pair struct {
		Id       uuid.UUID
		ParentId *uuid.UUID
	}
	var rows []pair
	err := r.db.WithContext(ctx).Model(&model.Bookmark{}).
		Select("id", "parent_id").
		Where("user_id = ?", userId).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	pairs := make(map[uuid.UUID]*uuid.UUID, len(rows))
	for _, row := range rows {
		pairs[row.Id] = row.ParentId
	}
	return pairs, nil
}

func (r *BookmarkRepositoryImpl) ListTags(ctx context.Context, userId uuid.UUID) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT jsonb_array_elements_text(tags) AS tag
		FROM bookmarks
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY tag`, userId).
		Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
