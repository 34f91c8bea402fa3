package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sakif/snippet-vault/internal/model"
	"github.com/sakif/snippet-vault/internal/repository/sqlite"
	"github.com/sakif/snippet-vault/internal/service"
)

// newTestRouter wires the real stack — chi router, handler, service, sqlite —
// against an in-memory database, so these tests exercise the same path a
// production request takes, minus the network.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	h := NewSnippetHandler(service.NewSnippetService(db, logger), logger)

	r := chi.NewRouter()
	r.Get("/", HandleIndex)
	r.Get("/health", HandleHealth)
	r.Get("/snippets", h.HandleList)
	r.Post("/snippets", h.HandleCreate)
	r.Delete("/snippets/{id}", h.HandleDelete)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func listSnippets(t *testing.T, router http.Handler) []model.Snippet {
	t.Helper()
	rec := doRequest(t, router, http.MethodGet, "/snippets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snippets []model.Snippet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snippets))
	return snippets
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.OK)
	require.NotEmpty(t, body.Message)
}

func TestIndex(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/snippets")
}

func TestListEmpty(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/snippets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	// An empty store must produce a JSON array, not null.
	require.JSONEq(t, "[]", rec.Body.String())
}

// TestCreateListDeleteRoundTrip walks the full lifecycle: create → appears in
// list with matching fields → delete → gone from list → second delete is 404.
func TestCreateListDeleteRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/snippets",
		`{"title":"Hello","language":"js","code":"console.log(1)"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		InsertedID string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.InsertedID)

	snippets := listSnippets(t, router)
	require.Len(t, snippets, 1)
	require.Equal(t, created.InsertedID, snippets[0].ID)
	require.Equal(t, "Hello", snippets[0].Title)
	require.Equal(t, "js", snippets[0].Language)
	require.Equal(t, "console.log(1)", snippets[0].Code)
	require.False(t, snippets[0].CreatedAt.IsZero())

	rec = doRequest(t, router, http.MethodDelete, "/snippets/"+created.InsertedID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok":true`)

	require.Empty(t, listSnippets(t, router))

	// Idempotent failure: the second delete reports 404 rather than
	// silently succeeding.
	rec = doRequest(t, router, http.MethodDelete, "/snippets/"+created.InsertedID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"","language":"js","code":"x"}`},
		{"whitespace title", `{"title":"   ","language":"js","code":"x"}`},
		{"missing language", `{"title":"t","code":"x"}`},
		{"empty code", `{"title":"t","language":"js","code":""}`},
		{"not json", `{"title": oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			rec := doRequest(t, router, http.MethodPost, "/snippets", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotEmpty(t, body.Message)

			// A rejected create leaves the store untouched.
			require.Empty(t, listSnippets(t, router))
		})
	}
}

func TestCreateIgnoresClientSuppliedID(t *testing.T) {
	router := newTestRouter(t)

	// Unknown fields in the body are dropped by the request struct; the
	// stored snippet gets a server-assigned id, never the client's.
	rec := doRequest(t, router, http.MethodPost, "/snippets",
		`{"id":"attacker-chosen","title":"t","language":"js","code":"x","createdAt":"1999-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	snippets := listSnippets(t, router)
	require.Len(t, snippets, 1)
	require.NotEqual(t, "attacker-chosen", snippets[0].ID)
	require.NotEqual(t, 1999, snippets[0].CreatedAt.Year())
}

func TestDeleteInvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/snippets",
		`{"title":"t","language":"js","code":"x"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Malformed id → 400, never 404.
	rec = doRequest(t, router, http.MethodDelete, "/snippets/not-a-valid-id", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	require.Len(t, listSnippets(t, router), 1)
}

func TestCreateStoresMultilineCode(t *testing.T) {
	router := newTestRouter(t)

	code := "def f():\n    return \"x\"\n"
	payload, err := json.Marshal(map[string]string{
		"title":    "multi",
		"language": "python",
		"code":     code,
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/snippets", string(payload))
	require.Equal(t, http.StatusCreated, rec.Code)

	snippets := listSnippets(t, router)
	require.Len(t, snippets, 1)
	require.Equal(t, code, snippets[0].Code)
}
