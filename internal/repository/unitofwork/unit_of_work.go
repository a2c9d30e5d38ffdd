package unitofwork

import (
	"context"

	"linkmark-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Multi-
// write operations (batch create, delete with cascade, reparenting)
// run between Begin and Commit so they apply atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RefreshTokenRepository() contract.RefreshTokenRepository
	BookmarkRepository() contract.BookmarkRepository
	NoteRepository() contract.NoteRepository
}
