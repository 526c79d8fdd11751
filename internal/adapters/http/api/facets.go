package api

import (
	"context"
	"net/http"

	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/pkg/logger"
)

// FacetsDependencies defines the interface for facet lookups.
type FacetsDependencies interface {
	Facets(ctx context.Context) (catalog.FacetIndex, error)
}

// FacetsHandler serves the filter chip values.
type FacetsHandler struct {
	deps   FacetsDependencies
	logger logger.Logger
}

// NewFacetsHandler creates a new facets handler.
func NewFacetsHandler(deps FacetsDependencies, l logger.Logger) *FacetsHandler {
	return &FacetsHandler{deps: deps, logger: l}
}

// HandleGetFacets handles GET /api/facets requests.
func (h *FacetsHandler) HandleGetFacets(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	idx, err := h.deps.Facets(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "build facets", logger.Error(err))
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idx)
}
