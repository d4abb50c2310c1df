package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error
type Kind string

const (
	KindInvalidInput     Kind = "INVALID_INPUT"
	KindNotFound         Kind = "NOT_FOUND"
	KindNameLookupFailed Kind = "NAME_LOOKUP_FAILED"
	KindValidation       Kind = "VALIDATION"
	KindForbidden        Kind = "FORBIDDEN"
	KindConflict         Kind = "CONFLICT"
	KindRemote           Kind = "REMOTE"
	KindInternal         Kind = "INTERNAL"
)

// AppError carries a message fit to show to the user
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError of the same kind, so sentinel values can be
// compared with errors.Is regardless of their message
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first AppError in the chain, or KindInternal
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the user facing message of err
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
