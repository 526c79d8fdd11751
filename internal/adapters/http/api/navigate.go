package api

import (
	"context"
	"net/http"

	"github.com/cannondawg34/portfolio/internal/domain/navigation"
)

// NavigationDependencies defines the interface for location resolution.
type NavigationDependencies interface {
	Navigate(ctx context.Context, path, fragment string) navigation.Result
	Locate(ctx context.Context, location string) navigation.Result
}

// NavigationHandler resolves locations to views.
type NavigationHandler struct {
	deps NavigationDependencies
}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler(deps NavigationDependencies) *NavigationHandler {
	return &NavigationHandler{deps: deps}
}

// HandleNavigate handles GET /api/navigate requests. Either location
// ("/projects#projectsTop") or path and fragment may be given; location wins.
func (h *NavigationHandler) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	if loc := q.Get("location"); loc != "" {
		writeJSON(w, http.StatusOK, h.deps.Locate(r.Context(), loc))
		return
	}
	path := q.Get("path")
	if path == "" {
		path = "/"
	}
	writeJSON(w, http.StatusOK, h.deps.Navigate(r.Context(), path, q.Get("fragment")))
}
