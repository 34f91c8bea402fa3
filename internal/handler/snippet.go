package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/snippet-vault/internal/apperror"
	"github.com/sakif/snippet-vault/internal/service"
)

// SnippetHandler exposes the snippet service over HTTP. It parses requests,
// delegates to the service, and translates outcomes to status codes via
// writeError — no business logic lives here.
type SnippetHandler struct {
	service *service.SnippetService
	logger  *slog.Logger
}

// NewSnippetHandler creates a new SnippetHandler.
func NewSnippetHandler(service *service.SnippetService, logger *slog.Logger) *SnippetHandler {
	return &SnippetHandler{
		service: service,
		logger:  logger,
	}
}

// createSnippetRequest is the expected body of POST /snippets. Decoding into
// a dedicated request struct (rather than model.Snippet) means a client can
// never smuggle in an id or createdAt — those fields simply don't exist here.
type createSnippetRequest struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// createSnippetResponse mirrors the original API: creation returns only the
// assigned id, and the consumer re-fetches the list.
type createSnippetResponse struct {
	InsertedID string `json:"insertedId"`
}

// deleteSnippetResponse confirms a deletion.
type deleteSnippetResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// HandleList returns every stored snippet.
//
// HTTP: GET /snippets
// 200 → JSON array of snippets (always [], never null, when empty)
// 503 → storage unreachable
func (h *SnippetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	snippets, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snippets)
}

// HandleCreate stores a new snippet.
//
// HTTP: POST /snippets
// BODY: {"title": "...", "language": "...", "code": "..."}
// 201 → {"insertedId": "..."}
// 400 → malformed JSON, or any field empty after trimming
// 503 → storage unreachable
func (h *SnippetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "request body must be valid JSON"))
		return
	}

	snippet, err := h.service.Create(r.Context(), req.Title, req.Language, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createSnippetResponse{InsertedID: snippet.ID})
}

// HandleDelete removes a snippet by id.
//
// HTTP: DELETE /snippets/{id}
// 200 → {"ok": true, "message": "snippet deleted"}
// 400 → id is not a well-formed identifier
// 404 → no snippet with that id
// 503 → storage unreachable
func (h *SnippetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteSnippetResponse{
		OK:      true,
		Message: "snippet deleted",
	})
}
