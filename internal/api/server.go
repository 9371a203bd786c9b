// Package api exposes the document conversion service over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/autodoc/internal/config"
	"github.com/dgallion1/autodoc/internal/convert"
	"github.com/dgallion1/autodoc/internal/llm"
	"github.com/dgallion1/autodoc/internal/rasterize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	appName    = "AutoDoc"
	appVersion = "1.0.0"
)

// Server is the HTTP API server for autodoc.
type Server struct {
	router     chi.Router
	converter  *convert.Service
	rasterizer *rasterize.Renderer
	stats      *llm.Stats
	log        *slog.Logger
	cfg        config.Config
}

// NewServer creates and configures the HTTP server. rasterizer may be nil,
// in which case PDF output is reported as unavailable.
func NewServer(converter *convert.Service, rasterizer *rasterize.Renderer, stats *llm.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		converter:  converter,
		rasterizer: rasterizer,
		stats:      stats,
		log:        log,
		cfg:        cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(CORS(s.cfg.CORSOrigins))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/convert", s.handleConvert)
	r.Post("/convert/download", s.handleConvertDownload)
	r.Get("/api/stats/llm", s.handleLLMStats)

	s.router = r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    appName,
		"version": appVersion,
		"endpoints": map[string]string{
			"health":  "/health",
			"convert": "/convert",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": appVersion,
	})
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"window": s.cfg.StatsWindow.String(),
		"stats":  s.stats.Snapshot(),
	})
}
