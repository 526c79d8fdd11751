package api

import (
	"context"
	"net/http"

	"github.com/cannondawg34/portfolio/internal/domain/model"
	"github.com/cannondawg34/portfolio/pkg/logger"
)

// GamesDependencies defines the interface for the games page content.
type GamesDependencies interface {
	Games(ctx context.Context) ([]model.Game, error)
}

// GamesHandler serves the games list.
type GamesHandler struct {
	deps   GamesDependencies
	assets assetResolver
	logger logger.Logger
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps GamesDependencies, basePath string, l logger.Logger) *GamesHandler {
	return &GamesHandler{deps: deps, assets: newAssetResolver(basePath), logger: l}
}

// HandleGetGames handles GET /api/games requests.
func (h *GamesHandler) HandleGetGames(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	games, err := h.deps.Games(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "list games", logger.Error(err))
		writeDomainError(w, err)
		return
	}
	out := make([]model.Game, len(games))
	for i, g := range games {
		out[i] = h.assets.game(g)
	}
	writeJSON(w, http.StatusOK, out)
}
