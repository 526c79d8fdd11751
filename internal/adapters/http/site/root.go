// Package site serves the embedded single-page site shell.
package site

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Error constants
var (
	ErrMissingIndex = errors.New("site index missing")
)

const indexPage = "index.html"

// Register attaches the site handler at / on mux. API paths are left to their
// own handlers and answer 404 here when unknown.
func Register(_ context.Context, mux *http.ServeMux) error {
	if mux == nil {
		panic("mux is nil")
	}
	h, err := NewRootHandler(FS())
	if err != nil {
		return err
	}
	mux.Handle("/", h)
	return nil
}

// RootHandler serves static files and falls back to the index page for
// client-side routes such as /projects or /about.
type RootHandler struct {
	files fs.FS
	index []byte
}

// NewRootHandler creates a root handler over files, which must hold index.html.
func NewRootHandler(files fs.FS) (*RootHandler, error) {
	index, err := fs.ReadFile(files, indexPage)
	if err != nil {
		return nil, errors.Join(ErrMissingIndex, err)
	}
	return &RootHandler{files: files, index: index}, nil
}

// ServeHTTP handles GET and HEAD requests for any non-API path.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && name != indexPage {
		if info, err := fs.Stat(h.files, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, h.files, name)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(h.index)
	}
}
