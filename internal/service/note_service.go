package service

import (
	"context"

	"linkmark-be/internal/apperror"
	"linkmark-be/internal/dto"
	"linkmark-be/internal/entity"
	"linkmark-be/internal/repository/specification"
	"linkmark-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	Add(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Get(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, noteId uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, noteId uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID) ([]*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{uowFactory: uowFactory}
}

// ownedBookmark resolves the bookmark a note operation is scoped to.
// A bookmark in another user's collection yields the same not-found as
// a nonexistent one.
func (s *noteService) ownedBookmark(ctx context.Context, uow unitofwork.UnitOfWork, userId, bookmarkId uuid.UUID) (*entity.Bookmark, error) {
	bookmark, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByID{ID: bookmarkId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperror.NewNotFound()
	}
	return bookmark, nil
}

func (s *noteService) findNote(ctx context.Context, uow unitofwork.UnitOfWork, bookmarkId, noteId uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.ByBookmarkID{BookmarkID: bookmarkId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound()
	}
	return note, nil
}

func (s *noteService) Add(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedBookmark(ctx, uow, userId, bookmarkId); err != nil {
		return nil, err
	}

	note := &entity.Note{
		Id:         uuid.New(),
		BookmarkId: bookmarkId,
		UserId:     userId,
		Text:       req.Text,
	}
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Get(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, noteId uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedBookmark(ctx, uow, userId, bookmarkId); err != nil {
		return nil, err
	}

	note, err := s.findNote(ctx, uow, bookmarkId, noteId)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedBookmark(ctx, uow, userId, bookmarkId); err != nil {
		return nil, err
	}

	note, err := s.findNote(ctx, uow, bookmarkId, noteId)
	if err != nil {
		return nil, err
	}

	note.Text = req.Text
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID, noteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedBookmark(ctx, uow, userId, bookmarkId); err != nil {
		return err
	}

	note, err := s.findNote(ctx, uow, bookmarkId, noteId)
	if err != nil {
		return err
	}

	return uow.NoteRepository().Delete(ctx, note.Id)
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, bookmarkId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedBookmark(ctx, uow, userId, bookmarkId); err != nil {
		return nil, err
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByBookmarkID{BookmarkID: bookmarkId},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         n.Id,
		BookmarkId: n.BookmarkId,
		Text:       n.Text,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
