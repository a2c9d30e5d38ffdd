package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"linkmark-be/internal/apperror"
	"linkmark-be/internal/dto"
	"linkmark-be/internal/entity"
	"linkmark-be/internal/pkg/logger"
	"linkmark-be/internal/repository/specification"
	"linkmark-be/internal/repository/unitofwork"
	"linkmark-be/pkg/canonical"
	"linkmark-be/pkg/hierarchy"
	"linkmark-be/pkg/pagination"

	"github.com/google/uuid"
)

type IBookmarkService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error)
	CreateBatch(ctx context.Context, userId uuid.UUID, reqs []*dto.CreateBookmarkRequest) ([]*dto.BookmarkResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.BookmarkResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.BookmarkResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, req *dto.ListBookmarksRequest) (*dto.ListBookmarksResponse, error)
	ListTags(ctx context.Context, userId uuid.UUID) (*dto.ListTagsResponse, error)
	ApplyEnrichment(ctx context.Context, msg *dto.BookmarkEnrichedMessage) error
}

type bookmarkService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewBookmarkService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IBookmarkService {
	return &bookmarkService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// buildBookmark turns a create request into a persistable entity.
// Validation failures come back as apperror values; nothing is written.
func (s *bookmarkService) buildBookmark(userId uuid.UUID, req *dto.CreateBookmarkRequest, arena hierarchy.Arena, now time.Time) (*entity.Bookmark, error) {
	if req.Url == "" {
		return nil, apperror.NewValidation("url field is mandatory")
	}

	canonicalUrl, err := canonical.Canonicalize(req.Url)
	if err != nil {
		return nil, apperror.NewValidation("url is not a valid URL")
	}

	title := req.Title
	if title == "" {
		title = canonicalUrl
	}

	timestamp := now.UTC()
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		timestamp = req.Timestamp.Time
	}

	var read *time.Time
	if req.Read != nil && !req.Read.IsZero() {
		t := req.Read.Time
		read = &t
	}

	id := uuid.New()
	if err := checkParent(arena, id, req.ParentId); err != nil {
		return nil, err
	}

	var meta json.RawMessage
	if len(req.Meta) > 0 && string(req.Meta) != "null" {
		meta = req.Meta
	}

	return &entity.Bookmark{
		Id:        id,
		UserId:    userId,
		Url:       canonicalUrl,
		Title:     title,
		Timestamp: timestamp,
		Read:      read,
		Tags:      normalizeTags(req.Tags),
		Meta:      meta,
		ParentId:  req.ParentId,
		CreatedAt: now.UTC(),
	}, nil
}

// checkParent maps the tree manager's verdicts onto the error taxonomy.
// A parent in another user's collection is absent from the arena, so it
// surfaces as the same validation error as a nonexistent one.
func checkParent(arena hierarchy.Arena, id uuid.UUID, parentId *uuid.UUID) error {
	switch err := arena.CanReparent(id, parentId); err {
	case nil:
		return nil
	case hierarchy.ErrParentNotFound:
		return apperror.NewValidation("parent bookmark does not exist")
	case hierarchy.ErrCycle:
		return apperror.NewValidation("parent would create a cycle")
	default:
		return err
	}
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

func (s *bookmarkService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	arena, err := uow.BookmarkRepository().ParentPairs(ctx, userId)
	if err != nil {
		return nil, err
	}

	bookmark, err := s.buildBookmark(userId, req, arena, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uow.BookmarkRepository().Create(ctx, bookmark); err != nil {
		return nil, err
	}

	s.announceCreated(ctx, bookmark)

	return toBookmarkResponse(bookmark, []*entity.Note{}), nil
}

// CreateBatch is all-or-nothing: every element is validated up front
// and the inserts share one transaction, so a bad element means no row
// is ever written.
func (s *bookmarkService) CreateBatch(ctx context.Context, userId uuid.UUID, reqs []*dto.CreateBookmarkRequest) ([]*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	arena, err := uow.BookmarkRepository().ParentPairs(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bookmarks := make([]*entity.Bookmark, 0, len(reqs))
	for _, req := range reqs {
		bookmark, err := s.buildBookmark(userId, req, arena, now)
		if err != nil {
			return nil, err
		}
		// Later elements may parent onto earlier ones in the same batch.
		arena[bookmark.Id] = bookmark.ParentId
		bookmarks = append(bookmarks, bookmark)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, bookmark := range bookmarks {
		if err := uow.BookmarkRepository().Create(ctx, bookmark); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	result := make([]*dto.BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		s.announceCreated(ctx, bookmark)
		result = append(result, toBookmarkResponse(bookmark, []*entity.Note{}))
	}
	return result, nil
}

// announceCreated hands the bookmark to the enrichment pipeline. The
// bookmark is already durable; a bus failure must never undo it.
func (s *bookmarkService) announceCreated(ctx context.Context, bookmark *entity.Bookmark) {
	msg := dto.EnrichBookmarkMessage{
		BookmarkId: bookmark.Id,
		UserId:     bookmark.UserId,
		Url:        bookmark.Url,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("bookmark", "failed to marshal enrichment message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("bookmark", "failed to publish enrichment message", map[string]interface{}{
			"bookmark_id": bookmark.Id.String(),
			"error":       err.Error(),
		})
	}
}

func (s *bookmarkService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmark, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperror.NewNotFound()
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByBookmarkID{BookmarkID: id},
	)
	if err != nil {
		return nil, err
	}

	return toBookmarkResponse(bookmark, notes), nil
}

func (s *bookmarkService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.BookmarkResponse, error) {
	if req.Id.Set {
		return nil, apperror.NewValidation("Updating id is not allowed")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmark, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperror.NewNotFound()
	}

	if req.Url.Set {
		if !req.Url.Valid || req.Url.Value == "" {
			return nil, apperror.NewValidation("url field is mandatory")
		}
		canonicalUrl, err := canonical.Canonicalize(req.Url.Value)
		if err != nil {
			return nil, apperror.NewValidation("url is not a valid URL")
		}
		bookmark.Url = canonicalUrl
	}

	if req.Title.Set {
		if req.Title.Valid && req.Title.Value != "" {
			bookmark.Title = req.Title.Value
		} else {
			bookmark.Title = bookmark.Url
		}
	}

	if req.Timestamp.Set {
		if !req.Timestamp.Valid || req.Timestamp.Value.IsZero() {
			return nil, apperror.NewValidation("timestamp cannot be cleared")
		}
		bookmark.Timestamp = req.Timestamp.Value.Time
	}

	if req.Read.Set {
		if req.Read.Valid && !req.Read.Value.IsZero() {
			t := req.Read.Value.Time
			bookmark.Read = &t
		} else {
			bookmark.Read = nil
		}
	}

	if req.Tags.Set {
		if req.Tags.Valid {
			bookmark.Tags = normalizeTags(req.Tags.Value)
		} else {
			bookmark.Tags = []string{}
		}
	}

	if req.Meta.Set {
		if req.Meta.Valid && len(req.Meta.Value) > 0 && string(req.Meta.Value) != "null" {
			bookmark.Meta = req.Meta.Value
		} else {
			bookmark.Meta = nil
		}
	}

	if req.ParentId.Set {
		var newParent *uuid.UUID
		if req.ParentId.Valid {
			p := req.ParentId.Value
			newParent = &p
		}
		arena, err := uow.BookmarkRepository().ParentPairs(ctx, userId)
		if err != nil {
			return nil, err
		}
		if err := checkParent(arena, bookmark.Id, newParent); err != nil {
			return nil, err
		}
		bookmark.ParentId = newParent
	}

	if err := uow.BookmarkRepository().Update(ctx, bookmark); err != nil {
		return nil, err
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByBookmarkID{BookmarkID: id},
	)
	if err != nil {
		return nil, err
	}

	return toBookmarkResponse(bookmark, notes), nil
}

// Delete removes the bookmark and its notes in one transaction. Direct
// children are detached rather than deleted, so sub-bookmarks survive
// their parent as roots.
func (s *bookmarkService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmark, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if bookmark == nil {
		return apperror.NewNotFound()
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	children, err := uow.BookmarkRepository().FindAll(ctx,
		specification.ByParentID{ParentID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	for _, child := range children {
		child.ParentId = nil
		if err := uow.BookmarkRepository().Update(ctx, child); err != nil {
			return err
		}
	}

	if err := uow.NoteRepository().DeleteByBookmarkId(ctx, id); err != nil {
		return err
	}

	if err := uow.BookmarkRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *bookmarkService) List(ctx context.Context, userId uuid.UUID, req *dto.ListBookmarksRequest) (*dto.ListBookmarksResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}

	if req.Url != "" {
		canonicalUrl, err := canonical.Canonicalize(req.Url)
		if err != nil {
			return nil, apperror.NewValidation("url is not a valid URL")
		}
		filters = append(filters, specification.ByUrl{Url: canonicalUrl})
	}

	if tags := splitTags(req.Tags); len(tags) > 0 {
		filters = append(filters, specification.HasAllTags{Tags: tags})
	}

	total, err := uow.BookmarkRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	page, err := pagination.Resolve(total, req.Page, req.PerPage)
	if err != nil {
		return nil, apperror.NewNotFound()
	}

	listSpecs := append(filters,
		specification.ReadingOrder{},
		specification.Paginate{Limit: page.PerPage, Offset: page.Offset},
	)
	bookmarks, err := uow.BookmarkRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	notesByBookmark, err := s.notesFor(ctx, uow, bookmarks)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		items = append(items, toBookmarkResponse(bookmark, notesByBookmark[bookmark.Id]))
	}

	return &dto.ListBookmarksResponse{
		Items:    items,
		Page:     page.Number,
		PerPage:  page.PerPage,
		LastPage: page.Last,
	}, nil
}

func (s *bookmarkService) notesFor(ctx context.Context, uow unitofwork.UnitOfWork, bookmarks []*entity.Bookmark) (map[uuid.UUID][]*entity.Note, error) {
	result := make(map[uuid.UUID][]*entity.Note, len(bookmarks))
	if len(bookmarks) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		ids = append(ids, bookmark.Id)
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByBookmarkIDs{BookmarkIDs: ids},
	)
	if err != nil {
		return nil, err
	}

	for _, note := range notes {
		result[note.BookmarkId] = append(result[note.BookmarkId], note)
	}
	return result, nil
}

func (s *bookmarkService) ListTags(ctx context.Context, userId uuid.UUID) (*dto.ListTagsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.BookmarkRepository().ListTags(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.ListTagsResponse{Tags: tags}, nil
}

// ApplyEnrichment lands fetched article content pushed back by a
// worker. It bypasses the user-facing patch rules: only the derived
// columns are touched and a vanished bookmark is not an error.
func (s *bookmarkService) ApplyEnrichment(ctx context.Context, msg *dto.BookmarkEnrichedMessage) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var contentHtml, contentText *string
	if msg.ContentHtml != "" {
		contentHtml = &msg.ContentHtml
	}
	if msg.ContentText != "" {
		contentText = &msg.ContentText
	}

	return uow.BookmarkRepository().UpdateContent(ctx, msg.BookmarkId, msg.Title, contentHtml, contentText)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func toBookmarkResponse(b *entity.Bookmark, notes []*entity.Note) *dto.BookmarkResponse {
	noteResponses := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		noteResponses = append(noteResponses, toNoteResponse(n))
	}

	return &dto.BookmarkResponse{
		Id:          b.Id,
		Url:         b.Url,
		Title:       b.Title,
		Timestamp:   b.Timestamp,
		Read:        b.Read,
		Tags:        b.Tags,
		Meta:        b.Meta,
		ParentId:    b.ParentId,
		ContentHtml: b.ContentHtml,
		ContentText: b.ContentText,
		Notes:       noteResponses,
	}
}
