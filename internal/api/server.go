// Package api exposes the layout pipeline over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/splitpack/splitpack/pkg/errors"
	"github.com/splitpack/splitpack/pkg/graph"
	"github.com/splitpack/splitpack/pkg/pipeline"
	"github.com/splitpack/splitpack/pkg/store"
)

// Server handles layout requests. The store is optional; without it
// GET /layouts/{hash} returns 404 for everything.
type Server struct {
	runner *pipeline.Runner
	store  *store.LayoutStore
	logger *log.Logger
	router chi.Router
}

// LayoutRequest is the POST /layout body.
type LayoutRequest struct {
	Graph   graph.File       `json:"graph"`
	Options pipeline.Options `json:"options"`
}

// LayoutResponse is the POST /layout reply. Artifacts are returned
// inline; SVG as a string, JSON as the embedded laid-out file.
type LayoutResponse struct {
	Hash   string         `json:"hash"`
	Cached bool           `json:"cached"`
	SVG    string         `json:"svg,omitempty"`
	Layout *graph.File    `json:"layout,omitempty"`
	Stats  pipeline.Stats `json:"stats"`
}

// NewServer builds the server and its routes. store may be nil.
func NewServer(runner *pipeline.Runner, layoutStore *store.LayoutStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  layoutStore,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/layout", s.handleLayout)
	r.Get("/layouts/{hash}", s.handleGetLayout)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Graph, req.Options)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("pipeline failed", "err", err)
			s.writeError(w, status, "layout failed")
			return
		}
		s.writeError(w, status, apperrors.UserMessage(err))
		return
	}

	if s.store != nil {
		if err := s.store.Save(r.Context(), result.GraphHash, result.File); err != nil {
			// Persisting is best-effort; the response still carries the result.
			s.logger.Warn("store save failed", "hash", result.GraphHash, "err", err)
		}
	}

	resp := LayoutResponse{
		Hash:   result.GraphHash,
		Cached: result.CacheHit,
		Stats:  result.Stats,
	}
	if svg, ok := result.Artifacts[pipeline.FormatSVG]; ok {
		resp.SVG = string(svg)
	}
	laid := result.File
	resp.Layout = &laid
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "layout store not configured")
		return
	}
	hash := chi.URLParam(r, "hash")

	file, err := s.store.Get(r.Context(), hash)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "layout not found")
		return
	}
	if err != nil {
		s.logger.Error("store get failed", "hash", hash, "err", err)
		s.writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	s.writeJSON(w, http.StatusOK, file)
}

// statusForError maps pipeline and graph errors to HTTP statuses.
func statusForError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidGraph,
		apperrors.ErrCodeInvalidEngine,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidOptions:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	if errors.Is(err, graph.ErrUnknownSourceNode) ||
		errors.Is(err, graph.ErrUnknownTargetNode) ||
		errors.Is(err, graph.ErrDuplicateNodeID) ||
		errors.Is(err, graph.ErrInvalidNodeID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
