package handler

import "net/http"

// healthResponse is the body of GET /health.
type healthResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// indexResponse is the body of GET / — a small signpost for anyone hitting
// the API root in a browser.
type indexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// HandleHealth reports that the process is up.
//
// HTTP: GET /health
//
// It deliberately never touches the snippet store: liveness of the process
// and reachability of storage are separate questions, and this endpoint
// answers only the first. It has no failure mode — if the process can serve
// the request at all, the answer is 200.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		OK:      true,
		Message: "server is healthy",
	})
}

// HandleIndex describes the API at its root.
//
// HTTP: GET /
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:   "Snippet Vault API is running",
		Endpoints: []string{"/health", "/snippets"},
	})
}
