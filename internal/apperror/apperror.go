// Package apperror defines the typed failures the rest of the application
// returns instead of raw errors.
//
// ERROR TAXONOMY:
// Every failure a snippet operation can produce falls into one of four kinds,
// each with its own sentinel error:
//
//	ErrValidation  — the request was malformed or incomplete (client's fault)
//	ErrInvalidID   — an id string cannot be parsed into the storage key format
//	ErrNotFound    — a well-formed id matched no stored snippet
//	ErrUnavailable — the backing store cannot be reached right now
//
// ErrInvalidID and ErrNotFound are deliberately distinct: a malformed id is a
// bad request, while a well-formed id with no match is a legitimate
// "already gone" state. The HTTP layer maps them to 400 and 404 respectively.
//
// Callers classify failures with errors.Is(err, ErrNotFound) etc. — never by
// matching error message text, which breaks the moment a message is reworded.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrInvalidID   = errors.New("invalid identifier")
	ErrUnavailable = errors.New("storage unavailable")
)

// AppError carries a sentinel (for classification via errors.Is) alongside a
// human-readable message that is safe to return to the client.
type AppError struct {
	Err     error  // sentinel, possibly wrapping an underlying cause
	Message string // human-readable, client-safe
	Field   string // optional: the request field at fault
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// InvalidID reports an id string that could not be parsed into the storage
// layer's native identifier format.
func InvalidID(id string) *AppError {
	return &AppError{
		Err:     ErrInvalidID,
		Message: fmt.Sprintf("invalid snippet id %q", id),
		Field:   "id",
	}
}

// Unavailable reports that the backing store could not be reached. The cause
// stays inside the error chain for server-side logs; the Message is the only
// part a client ever sees.
func Unavailable(cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %v", ErrUnavailable, cause),
		Message: "snippet storage is unavailable, try again in a moment",
	}
}
