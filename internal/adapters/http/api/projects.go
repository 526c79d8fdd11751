package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/pkg/logger"
)

// ProjectsDependencies defines the interface for project operations.
type ProjectsDependencies interface {
	Filter(ctx context.Context, state catalog.State) (FilterResult, error)
	Project(ctx context.Context, slug string) (catalog.Record, error)
}

// ProjectsHandler handles project listing and detail requests.
type ProjectsHandler struct {
	deps   ProjectsDependencies
	assets assetResolver
	logger logger.Logger
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(deps ProjectsDependencies, basePath string, l logger.Logger) *ProjectsHandler {
	return &ProjectsHandler{deps: deps, assets: newAssetResolver(basePath), logger: l}
}

// HandleListProjects handles GET /api/projects?q=&category=&stack= requests.
// category and stack may repeat; each occurrence selects one value.
func (h *ProjectsHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	res, err := h.deps.Filter(r.Context(), stateFromQuery(r))
	if err != nil {
		h.logger.Error(r.Context(), "filter projects", logger.Error(err))
		writeDomainError(w, err)
		return
	}
	items := make([]catalog.Record, len(res.Items))
	for i, rec := range res.Items {
		items[i] = h.assets.project(rec)
	}
	res.Items = items
	writeJSON(w, http.StatusOK, res)
}

// HandleGetProject handles GET /api/projects/{slug} requests.
func (h *ProjectsHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, "/api/projects/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingSlug)
		return
	}
	rec, err := h.deps.Project(r.Context(), slug)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.assets.project(rec))
}

// stateFromQuery builds a filter state from URL parameters. Empty values are
// ignored so "?category=" selects nothing.
func stateFromQuery(r *http.Request) catalog.State {
	q := r.URL.Query()
	state := catalog.Clear()
	state.Query = q.Get("q")
	for _, c := range q["category"] {
		if c != "" {
			state.Categories[c] = struct{}{}
		}
	}
	for _, s := range q["stack"] {
		if s != "" {
			state.Stack[s] = struct{}{}
		}
	}
	return state
}
