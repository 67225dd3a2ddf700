package api

import (
	"encoding/json"
	"net/http"
)

// handleSyntax returns the full reference document.
func (s *Server) handleSyntax(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"syntax": s.svc.FullReference()})
}

// handleSearch mirrors the search_roc_syntax tool. A missing query parameter
// is the only failure; an unresolvable query still succeeds with the help
// listing.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		jsonError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, s.svc.Search(q))
}

// handleTopics lists the topic catalog.
func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"topics": s.svc.Topics()})
}

// handleStats reports document/catalog stats and the served request count.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"document": s.svc.Snapshot(),
		"requests": s.requests.Load(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
