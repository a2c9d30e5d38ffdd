// Package apperror carries the error taxonomy the services surface to
// the HTTP edge: validation rejections (including cycle and parent
// checks) and not-found, which deliberately never reveals whether a row
// exists under another user.
package apperror

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFound uses one fixed message for every cause so that a row
// owned by someone else looks exactly like a row that never existed.
func NewNotFound() *AppError {
	return &AppError{Kind: KindNotFound, Message: "Not found"}
}

func NewInternal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// As extracts an *AppError if err carries one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == KindNotFound
}

func IsValidation(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == KindValidation
}
