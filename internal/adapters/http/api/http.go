// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/cannondawg34/portfolio/internal/adapters/repository"
	"github.com/cannondawg34/portfolio/internal/domain/theme"
	"github.com/cannondawg34/portfolio/internal/domain/types"
	"github.com/cannondawg34/portfolio/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ProjectsDependencies
	FacetsDependencies
	GamesDependencies
	NavigationDependencies
	ThemeDependencies
}

// FilterResult mirrors the read shape returned by filter queries.
type FilterResult = types.FilterResult

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	projectsHandler   *ProjectsHandler
	facetsHandler     *FacetsHandler
	gamesHandler      *GamesHandler
	navigationHandler *NavigationHandler
	themeHandler      *ThemeHandler
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	basePath string
	secure   bool
	logger   logger.Logger
}

// WithBasePath sets the deployment base path joined onto asset references.
func WithBasePath(path string) ServerOption {
	return func(c *serverConfig) {
		if path != "" {
			c.basePath = path
		}
	}
}

// WithSecureCookies marks the client id cookie Secure.
func WithSecureCookies(secure bool) ServerOption {
	return func(c *serverConfig) {
		c.secure = secure
	}
}

// WithLogger sets the logger handlers report failures to.
func WithLogger(l logger.Logger) ServerOption {
	return func(c *serverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := serverConfig{basePath: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Named("api")
	}

	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		projectsHandler:   NewProjectsHandler(deps, cfg.basePath, cfg.logger),
		facetsHandler:     NewFacetsHandler(deps, cfg.logger),
		gamesHandler:      NewGamesHandler(deps, cfg.basePath, cfg.logger),
		navigationHandler: NewNavigationHandler(deps),
		themeHandler:      NewThemeHandler(deps, cfg.secure, cfg.logger),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", MetricsMiddleware(s.healthHandler.HandleHealth, "metrics"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/projects", MetricsMiddleware(s.projectsHandler.HandleListProjects, "projects"))
	mux.HandleFunc("/api/projects/", MetricsMiddleware(s.projectsHandler.HandleGetProject, "project"))
	mux.HandleFunc("/api/facets", MetricsMiddleware(s.facetsHandler.HandleGetFacets, "facets"))
	mux.HandleFunc("/api/games", MetricsMiddleware(s.gamesHandler.HandleGetGames, "games"))
	mux.HandleFunc("/api/navigate", MetricsMiddleware(s.navigationHandler.HandleNavigate, "navigate"))
	mux.HandleFunc("/api/theme", MetricsMiddleware(s.themeHandler.HandleTheme, "theme"))
	mux.HandleFunc("/api/theme/toggle", MetricsMiddleware(s.themeHandler.HandleToggle, "theme_toggle"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates upstream sentinels to a status and code.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, theme.ErrInvalidTheme), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// allowMethods answers 405 and returns false unless r uses one of methods.
func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	if slices.Contains(methods, r.Method) {
		return true
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
	return false
}
