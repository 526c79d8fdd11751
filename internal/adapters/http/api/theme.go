package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cannondawg34/portfolio/internal/domain/theme"
	"github.com/cannondawg34/portfolio/pkg/logger"
)

const (
	// ClientCookie names the cookie carrying the anonymous client id.
	ClientCookie = "portfolio_client"

	clientCookieMaxAge = 365 * 24 * time.Hour
	maxThemeBodyBytes  = 1 << 10
)

// ThemeDependencies defines the interface for theme preference operations.
type ThemeDependencies interface {
	Theme(ctx context.Context, client string) (theme.Theme, error)
	SetTheme(ctx context.Context, client, raw string) (theme.Theme, error)
	ToggleTheme(ctx context.Context, client string) (theme.Theme, error)
}

type themeBody struct {
	Theme string `json:"theme"`
}

// ThemeHandler reads and writes the per-client theme preference.
type ThemeHandler struct {
	deps   ThemeDependencies
	secure bool
	logger logger.Logger
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(deps ThemeDependencies, secure bool, l logger.Logger) *ThemeHandler {
	return &ThemeHandler{deps: deps, secure: secure, logger: l}
}

// HandleTheme handles GET and PUT /api/theme requests.
func (h *ThemeHandler) HandleTheme(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPut) {
		return
	}
	client := h.clientID(w, r)

	if r.Method == http.MethodGet {
		// A failing store still yields the default theme.
		t, err := h.deps.Theme(r.Context(), client)
		if err != nil {
			h.logger.Warn(r.Context(), "serving default theme", logger.Error(err))
		}
		writeJSON(w, http.StatusOK, themeBody{Theme: string(t)})
		return
	}

	var body themeBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxThemeBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	t, err := h.deps.SetTheme(r.Context(), client, body.Theme)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: string(t)})
}

// HandleToggle handles POST /api/theme/toggle requests.
func (h *ThemeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}
	t, err := h.deps.ToggleTheme(r.Context(), h.clientID(w, r))
	if err != nil {
		h.logger.Error(r.Context(), "toggle theme", logger.Error(err))
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: string(t)})
}

// clientID returns the client id from the cookie, issuing a fresh one when
// the cookie is missing or malformed.
func (h *ThemeHandler) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(ClientCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
