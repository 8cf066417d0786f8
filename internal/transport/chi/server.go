// Package chi wires the search, health, and UI routes onto a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tuxcast/epidex/internal/domain"
	"github.com/tuxcast/epidex/internal/domain/episode"
	"github.com/tuxcast/epidex/internal/metrics"
	healthuc "github.com/tuxcast/epidex/internal/usecase/health"
	searchuc "github.com/tuxcast/epidex/internal/usecase/search"
	"github.com/tuxcast/epidex/internal/version"
	"github.com/tuxcast/epidex/web"
)

// Server exposes the search pipeline over HTTP: an HTML results page, a
// JSON API, health, and metrics.
type Server struct {
	search  *searchuc.Service
	health  *healthuc.Service
	logger  *zap.Logger
	results *template.Template
}

// NewServer creates an HTTP server. It parses the embedded templates, so it
// fails only on a broken build.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{
		search:  search,
		health:  health,
		logger:  logger,
		results: tmpl,
	}, nil
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.handleSearchPage)
	r.Get("/api/search", s.handleSearchAPI)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// Only possible if the embedded tree is broken at build time.
		panic("static assets missing: " + err.Error())
	}
	r.Handle("/*", http.FileServer(http.FS(staticFS)))
}

// searchResponse is the JSON API payload.
type searchResponse struct {
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Episodes []episode.Episode `json:"episodes"`
}

// resultsPage is the data handed to the results template.
type resultsPage struct {
	Query    string
	Episodes []episode.Episode
}

func (s *Server) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := s.runSearch(w, r, query)
	if err != nil {
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:    query,
		Count:    len(results),
		Episodes: results,
	})
}

func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := s.runSearch(w, r, query)
	if err != nil {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.results.ExecuteTemplate(w, "results.html", resultsPage{Query: query, Episodes: results}); err != nil {
		s.logger.Error("render results page", zap.Error(err))
	}
}

// runSearch executes the pipeline and records search metrics. On error it
// writes the response itself and returns the error so handlers just bail.
func (s *Server) runSearch(w http.ResponseWriter, r *http.Request, query string) ([]episode.Episode, error) {
	start := time.Now()
	results, err := s.search.Search(r.Context(), query)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		s.logger.Error("search failed", zap.String("query", query), zap.Error(err))
		if errors.Is(err, domain.ErrInconsistentIndex) {
			writeError(w, http.StatusInternalServerError, "catalog_corrupted", "catalog index is corrupted")
		} else {
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return nil, err
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchResults.Observe(float64(len(results)))
	if results == nil {
		results = []episode.Episode{}
	}
	return results, nil
}

// healthResponse is the health payload.
type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Episodes int    `json:"episodes"`
	Tags     int    `json:"tags"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		Status:   string(report.Status),
		Version:  version.Version,
		Episodes: report.Episodes,
		Tags:     report.Tags,
	})
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
