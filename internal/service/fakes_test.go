package service

import (
	"context"
	"sort"
	"time"

	"linkmark-be/internal/entity"
	"linkmark-be/internal/repository/contract"
	"linkmark-be/internal/repository/specification"
	"linkmark-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// The fakes below back the service tests with in-memory state. They
// interpret the same specification values the gorm repositories apply,
// so service-level filtering behaves the way it does against Postgres.

type fakeStore struct {
	bookmarks map[uuid.UUID]*entity.Bookmark
	notes     map[uuid.UUID]*entity.Note
	users     map[uuid.UUID]*entity.User
	tokens    map[uuid.UUID]*entity.UserRefreshToken

	// snapshots taken at Begin, restored on Rollback
	txBookmarks map[uuid.UUID]*entity.Bookmark
	txNotes     map[uuid.UUID]*entity.Note
	inTx        bool

	failCreateAfter int // fail the Nth bookmark create when > 0
	createCalls     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookmarks: make(map[uuid.UUID]*entity.Bookmark),
		notes:     make(map[uuid.UUID]*entity.Note),
		users:     make(map[uuid.UUID]*entity.User),
		tokens:    make(map[uuid.UUID]*entity.UserRefreshToken),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

type fakeUow struct {
	store *fakeStore
}

func copyBookmarks(src map[uuid.UUID]*entity.Bookmark) map[uuid.UUID]*entity.Bookmark {
	dst := make(map[uuid.UUID]*entity.Bookmark, len(src))
	for k, v := range src {
		b := *v
		dst[k] = &b
	}
	return dst
}

func copyNotes(src map[uuid.UUID]*entity.Note) map[uuid.UUID]*entity.Note {
	dst := make(map[uuid.UUID]*entity.Note, len(src))
	for k, v := range src {
		n := *v
		dst[k] = &n
	}
	return dst
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.store.txBookmarks = copyBookmarks(u.store.bookmarks)
	u.store.txNotes = copyNotes(u.store.notes)
	u.store.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.store.inTx = false
	u.store.txBookmarks = nil
	u.store.txNotes = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.store.inTx {
		return nil
	}
	u.store.bookmarks = u.store.txBookmarks
	u.store.notes = u.store.txNotes
	u.store.inTx = false
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) RefreshTokenRepository() contract.RefreshTokenRepository {
	return &fakeTokenRepo{store: u.store}
}

func (u *fakeUow) BookmarkRepository() contract.BookmarkRepository {
	return &fakeBookmarkRepo{store: u.store}
}

func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

type fakeBookmarkRepo struct {
	store *fakeStore
}

type bookmarkFilter struct {
	specs []specification.Specification
}

func (f bookmarkFilter) matches(b *entity.Bookmark) bool {
	for _, spec := range f.specs {
		switch s := spec.(type) {
		case specification.ByID:
			if b.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if b.UserId != s.UserID {
				return false
			}
		case specification.ByUrl:
			if b.Url != s.Url {
				return false
			}
		case specification.HasAllTags:
			if !b.HasAllTags(s.Tags) {
				return false
			}
		case specification.ByParentID:
			if b.ParentId == nil || *b.ParentId != s.ParentID {
				return false
			}
		case specification.ReadNotNull:
			if b.Read == nil {
				return false
			}
		case specification.ReadAfter:
			if b.Read == nil || !b.Read.After(s.T) {
				return false
			}
		case specification.ReadSince:
			if b.Read == nil || b.Read.Before(s.T) {
				return false
			}
		}
	}
	return true
}

type errCreateFailed struct{}

func (errCreateFailed) Error() string { return "create failed" }

func (r *fakeBookmarkRepo) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	r.store.createCalls++
	if r.store.failCreateAfter > 0 && r.store.createCalls >= r.store.failCreateAfter {
		return errCreateFailed{}
	}
	b := *bookmark
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	r.store.bookmarks[b.Id] = &b
	return nil
}

func (r *fakeBookmarkRepo) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	b := *bookmark
	r.store.bookmarks[b.Id] = &b
	return nil
}

func (r *fakeBookmarkRepo) UpdateContent(ctx context.Context, id uuid.UUID, title string, contentHtml, contentText *string) error {
	b, ok := r.store.bookmarks[id]
	if !ok {
		return nil
	}
	if title != "" {
		b.Title = title
	}
	b.ContentHtml = contentHtml
	b.ContentText = contentText
	return nil
}

func (r *fakeBookmarkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.bookmarks, id)
	return nil
}

func (r *fakeBookmarkRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	filter := bookmarkFilter{specs: specs}
	for _, b := range r.store.bookmarks {
		if filter.matches(b) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBookmarkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	filter := bookmarkFilter{}
	var order *specification.ReadingOrder
	var window *specification.Paginate
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ReadingOrder:
			o := s
			order = &o
		case specification.Paginate:
			w := s
			window = &w
		default:
			filter.specs = append(filter.specs, spec)
		}
	}

	var result []*entity.Bookmark
	for _, b := range r.store.bookmarks {
		if filter.matches(b) {
			copied := *b
			result = append(result, &copied)
		}
	}

	if order != nil {
		sort.Slice(result, func(i, j int) bool {
			a, b := result[i], result[j]
			if (a.Read == nil) != (b.Read == nil) {
				return a.Read == nil
			}
			if a.Read != nil && b.Read != nil && !a.Read.Equal(*b.Read) {
				return a.Read.After(*b.Read)
			}
			return a.Timestamp.After(b.Timestamp)
		})
	}

	if window != nil {
		if window.Offset >= len(result) {
			return nil, nil
		}
		end := window.Offset + window.Limit
		if end > len(result) {
			end = len(result)
		}
		result = result[window.Offset:end]
	}
	return result, nil
}

func (r *fakeBookmarkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	filter := bookmarkFilter{specs: specs}
	var count int64
	for _, b := range r.store.bookmarks {
		if filter.matches(b) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookmarkRepo) ParentPairs(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	pairs := make(map[uuid.UUID]*uuid.UUID)
	for _, b := range r.store.bookmarks {
		if b.UserId == userId {
			pairs[b.Id] = b.ParentId
		}
	}
	return pairs, nil
}

func (r *fakeBookmarkRepo) ListTags(ctx context.Context, userId uuid.UUID) ([]string, error) {
	seen := make(map[string]struct{})
	for _, b := range r.store.bookmarks {
		if b.UserId != userId {
			continue
		}
		for _, t := range b.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, nil
}

type fakeNoteRepo struct {
	store *fakeStore
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByBookmarkID:
			if n.BookmarkId != s.BookmarkID {
				return false
			}
		case specification.ByBookmarkIDs:
			found := false
			for _, id := range s.BookmarkIDs {
				if n.BookmarkId == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	n := *note
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.store.notes[n.Id] = &n
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	n := *note
	r.store.notes[n.Id] = &n
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) DeleteByBookmarkId(ctx context.Context, bookmarkId uuid.UUID) error {
	for id, n := range r.store.notes {
		if n.BookmarkId == bookmarkId {
			delete(r.store.notes, id)
		}
	}
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			copied := *n
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var result []*entity.Note
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			copied := *n
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	u := *user
	r.store.users[u.Id] = &u
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		matched := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if u.Id != s.ID {
					matched = false
				}
			case specification.ByEmail:
				if u.Email != s.Email {
					matched = false
				}
			}
		}
		if matched {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

type fakeTokenRepo struct {
	store *fakeStore
}

func (r *fakeTokenRepo) Create(ctx context.Context, token *entity.UserRefreshToken) error {
	t := *token
	r.store.tokens[t.Id] = &t
	return nil
}

func (r *fakeTokenRepo) Update(ctx context.Context, token *entity.UserRefreshToken) error {
	t := *token
	r.store.tokens[t.Id] = &t
	return nil
}

func (r *fakeTokenRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	for _, t := range r.store.tokens {
		matched := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByTokenHash:
				if t.TokenHash != s.Hash {
					matched = false
				}
			case specification.NotRevoked:
				if t.Revoked {
					matched = false
				}
			}
		}
		if matched {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}
