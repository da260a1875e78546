package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashton-hoops/Defense/searcher"
	"github.com/ashton-hoops/Defense/store"
)

// Server exposes the clip store and the semantic search operations over
// HTTP. It owns the translation from the searcher's error taxonomy to
// status codes; the searcher itself knows nothing about HTTP.
type Server struct {
	options  Options
	searcher *searcher.Searcher
	store    store.Store
	server   *http.Server
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

func (s *Server) Run() error {
	slog.InfoContext(s.options.Context, "http server listening", "address", s.options.Address)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleSemanticSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	results, err := s.searcher.Search(r.Context(), req.Query, searcher.WithLimit(req.TopK))
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"query":   req.Query,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleRebuildEmbeddings(w http.ResponseWriter, r *http.Request) {
	report, err := s.searcher.Rebuild(r.Context())
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"count": report.Count,
	})
}

func (s *Server) handleSearchStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"semantic_search_available": s.searcher.Available(),
	})
}

func (s *Server) handleListClips(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.FetchAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to fetch clips", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to fetch clips"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"count": len(records),
		"clips": records,
	})
}

func (s *Server) handleGetClip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, err := s.store.Fetch(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to fetch clip", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to fetch clip"})
		return
	}

	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "clip not found"})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, searcher.ErrEmptyQuery):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "query parameter required"})
	case errors.Is(err, searcher.ErrNotConfigured):
		writeJSON(w, http.StatusNotImplemented, map[string]any{
			"error":     "semantic search not available",
			"available": false,
		})
	case errors.Is(err, searcher.ErrUnavailable):
		slog.ErrorContext(r.Context(), "embedding provider failure", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "semantic search is unavailable"})
	default:
		slog.ErrorContext(r.Context(), "semantic search failure", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func NewServer(srch *searcher.Searcher, st store.Store, opts ...Option) *Server {
	options := NewOptions(opts...)

	s := &Server{
		options:  options,
		searcher: srch,
		store:    st,
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/clips", s.handleListClips).Methods(http.MethodGet)
	router.HandleFunc("/api/clips/{id}", s.handleGetClip).Methods(http.MethodGet)
	router.HandleFunc("/api/search/semantic", s.handleSemanticSearch).Methods(http.MethodPost)
	router.HandleFunc("/api/search/rebuild-embeddings", s.handleRebuildEmbeddings).Methods(http.MethodPost)
	router.HandleFunc("/api/search/status", s.handleSearchStatus).Methods(http.MethodGet)

	var handler http.Handler = router
	for i := len(options.Middleware) - 1; i >= 0; i-- {
		handler = options.Middleware[i](handler)
	}

	s.server = &http.Server{
		Addr:    options.Address,
		Handler: handler,
	}

	return s
}
