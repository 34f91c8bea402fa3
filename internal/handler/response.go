package handler

// RESPONSE HELPERS:
// Every handler sends JSON through these two functions so the wire format
// stays consistent. writeError is the ONLY place in the codebase where
// domain errors become HTTP status codes — the service and repository layers
// know nothing about HTTP.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/snippet-vault/internal/apperror"
)

// ErrorResponse is the shape of every error body: a single human-readable
// message. Clients branch on the status code, not on message text.
type ErrorResponse struct {
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code.
// Headers and status must be written before the body — once Encode starts
// writing, header changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already gone at this point; logging is all we can do.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to an HTTP status and sends it.
//
// The mapping, in one place:
//
//	ErrValidation  → 400  malformed/incomplete create request
//	ErrInvalidID   → 400  delete id that isn't a well-formed storage key
//	ErrNotFound    → 404  well-formed id, nothing there
//	ErrUnavailable → 503  the store can't be reached; caller may retry
//	anything else  → 500  logged server-side, generic message to the client
//
// errors.Is walks the whole wrap chain (the service prefixes context with
// fmt.Errorf("...: %w", err)), so classification survives wrapping.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrInvalidID):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUnavailable):
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, ErrorResponse{Message: appErr.Message})
		return
	}

	// Unclassified failure: full detail stays in the server log, the client
	// gets a safe generic message. Raw error text can contain SQL fragments
	// or file paths and must never leak.
	slog.Error("unhandled error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "an internal error occurred",
	})
}
