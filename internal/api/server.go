// Package api exposes the generation pipeline over a small JSON API. This is
// the programmatic caller boundary; presentation stays outside.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docugen/internal/metrics"
	"git.home.luguber.info/inful/docugen/internal/pipeline"
)

// Server represents the API server.
type Server struct {
	Addr    string
	session *pipeline.Session
	mux     *http.ServeMux
	server  *http.Server
}

// Options configures the API server.
type Options struct {
	Addr     string
	Session  *pipeline.Session
	Registry *prom.Registry // nil disables the metrics endpoint
}

// NewServer creates a new API server around one session.
func NewServer(opts Options) *Server {
	s := &Server{
		Addr:    opts.Addr,
		session: opts.Session,
		mux:     http.NewServeMux(),
	}

	s.setupRoutes(opts.Registry)

	s.server = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls block for tens of seconds
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(reg *prom.Registry) {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /generate", s.handleGenerate)
	s.mux.HandleFunc("POST /regenerate", s.handleRegenerate)
	s.mux.HandleFunc("GET /documents", s.handleGetDocuments)
	s.mux.HandleFunc("PUT /sections/{id}", s.handleEditSection)

	s.mux.HandleFunc("POST /export/archive", s.handleExportArchive)
	s.mux.HandleFunc("POST /export/remote", s.handleExportRemote)

	if reg != nil {
		s.mux.Handle("GET /metrics", metrics.HTTPHandler(reg))
	}
}

// Handler exposes the route mux (tests).
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Error writes an error response.
func (s *Server) Error(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := Response{
		Success: false,
		Error:   message,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// Success writes a success response.
func (s *Server) Success(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := Response{
		Success: true,
		Data:    data,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
