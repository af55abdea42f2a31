// Package http exposes the system over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/lifeos/internal/agent"
	"github.com/aretw0/lifeos/internal/decision"
	"github.com/aretw0/lifeos/internal/docmanager"
	"github.com/aretw0/lifeos/internal/intel"
	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/metrics"
	"github.com/aretw0/lifeos/internal/protocol"
	"github.com/aretw0/lifeos/pkg/domain"
)

// System defines the facade surface the API serves.
type System interface {
	Documents() *docmanager.Manager
	Agents() *agent.Coordinator
	Protocols() *protocol.Engine
	Checker() *decision.Checker
	Intel() *intel.Branch
	Health() map[string]any
}

// Server routes API requests to the system.
type Server struct {
	sys    System
	logger *slog.Logger
}

// NewHandler builds the HTTP handler for the system.
func NewHandler(sys System, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{sys: sys, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/documents", s.listDocuments)
	r.Get("/documents/{name}", s.getDocument)
	r.Post("/documents/{name}/insights", s.addInsight)
	r.Get("/agents", s.listAgents)
	r.Post("/agents/{name}/query", s.queryAgent)
	r.Post("/protocols/{name}/execute", s.executeProtocol)
	r.Post("/tasks/evaluate", s.evaluateTasks)
	r.Get("/briefing", s.briefing)
	return r
}

// urlParam returns the decoded route parameter.
func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	health := s.sys.Health()
	health["status"] = "ok"
	s.writeJSON(w, http.StatusOK, health)
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	names, err := s.sys.Documents().List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"documents": names})
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")
	doc, err := s.sys.Documents().Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			s.writeError(w, http.StatusNotFound, "document not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

type insightRequest struct {
	Insight string `json:"insight"`
	Source  string `json:"source"`
}

func (s *Server) addInsight(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Insight == "" {
		s.writeError(w, http.StatusBadRequest, "insight is required")
		return
	}

	name := urlParam(r, "name")
	doc, err := s.sys.Documents().AddInsight(r.Context(), name, req.Insight, req.Source)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			s.writeError(w, http.StatusNotFound, "document not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) listAgents(w http.ResponseWriter, r *http.Request) {
	factory := s.sys.Agents().Factory()

	statuses := make([]domain.AgentStatus, 0)
	for _, name := range factory.Names() {
		a, err := factory.Get(name)
		if err != nil {
			continue
		}
		statuses = append(statuses, a.Status())
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"agents": statuses})
}

type queryRequest struct {
	Query string `json:"query"`
}

func (s *Server) queryAgent(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := s.sys.Agents().Factory().Get(urlParam(r, "name"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, "agent not found")
		return
	}

	resp := a.Process(r.Context(), req.Query, domain.ExecContext{})
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) executeProtocol(w http.ResponseWriter, r *http.Request) {
	var ec domain.ExecContext
	if err := json.NewDecoder(r.Body).Decode(&ec); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := urlParam(r, "name")
	if _, err := s.sys.Protocols().Get(name); err != nil {
		s.writeError(w, http.StatusNotFound, "protocol not found")
		return
	}

	result := s.sys.Protocols().Execute(r.Context(), name, ec)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) evaluateTasks(w http.ResponseWriter, r *http.Request) {
	var specs []domain.TaskSpec
	if err := json.NewDecoder(r.Body).Decode(&specs); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary := s.sys.Checker().Summary(specs)
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) briefing(w http.ResponseWriter, r *http.Request) {
	briefing := s.sys.Intel().DailyBriefing(r.Context())
	s.writeJSON(w, http.StatusOK, briefing)
}
