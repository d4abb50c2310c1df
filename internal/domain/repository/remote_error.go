package repository

import (
	"errors"
	"fmt"
	"strings"
)

// RemoteErrorKind classifies failures reported by the remote store
type RemoteErrorKind string

const (
	RemoteKindPolicyRecursion RemoteErrorKind = "policy_recursion"
	RemoteKindSchema          RemoteErrorKind = "schema"
	RemoteKindConflict        RemoteErrorKind = "conflict"
	RemoteKindUnavailable     RemoteErrorKind = "unavailable"
	RemoteKindGeneric         RemoteErrorKind = "generic"
)

// PostgreSQL error codes the store surfaces
const (
	pgCodeUniqueViolation   = "23505"
	pgCodeUndefinedTable    = "42P01"
	pgCodeUndefinedColumn   = "42703"
	pgCodeInfiniteRecursion = "42P17"
)

// RemoteError is a failed call to the remote store
type RemoteError struct {
	Table   string
	Kind    RemoteErrorKind
	Code    string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case RemoteKindPolicyRecursion:
		return fmt.Sprintf("Database configuration error: Row Level Security policy issue in %s. Please check your RLS policies.", e.Table)
	case RemoteKindSchema:
		return fmt.Sprintf("Column or table error in %s: %s", e.Table, e.Message)
	default:
		return fmt.Sprintf("Error accessing %s: %s", e.Table, e.Message)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError classifies a store failure by its SQL state code,
// falling back to the message text when no code is available
func NewRemoteError(table, code, message string, err error) *RemoteError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &RemoteError{
		Table:   table,
		Kind:    classify(code, message),
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewUnavailableError reports a store that could not be reached at all
func NewUnavailableError(table string, err error) *RemoteError {
	return &RemoteError{
		Table:   table,
		Kind:    RemoteKindUnavailable,
		Message: err.Error(),
		Err:     err,
	}
}

// IsRemoteKind reports whether err is a RemoteError of the given kind
func IsRemoteKind(err error, kind RemoteErrorKind) bool {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Kind == kind
	}
	return false
}

func classify(code, message string) RemoteErrorKind {
	switch code {
	case pgCodeInfiniteRecursion:
		return RemoteKindPolicyRecursion
	case pgCodeUndefinedTable, pgCodeUndefinedColumn:
		return RemoteKindSchema
	case pgCodeUniqueViolation:
		return RemoteKindConflict
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "infinite recursion"):
		return RemoteKindPolicyRecursion
	case strings.Contains(lower, "does not exist"):
		return RemoteKindSchema
	case strings.Contains(lower, "duplicate key"):
		return RemoteKindConflict
	}
	return RemoteKindGeneric
}
