package navigation

import "strings"

// Result is the outcome of resolving a location.
type Result struct {
	View   ViewID `json:"view"`
	Scroll bool   `json:"scroll"`
	Anchor string `json:"anchor,omitempty"`
}

// Resolver resolves locations served under a deployment base path.
type Resolver struct {
	basePath string
}

// NewResolver creates a Resolver for basePath ("/" or e.g. "/NewPortfolio/").
func NewResolver(basePath string) *Resolver {
	return &Resolver{basePath: "/" + strings.Trim(basePath, "/")}
}

// Resolve splits location ("/projects#projectsTop", optionally with a query)
// and resolves the view and scroll request. The anchor is only honoured when
// the resolved view renders it.
func (r *Resolver) Resolve(location string) Result {
	path, fragment, _ := strings.Cut(location, "#")
	path, _, _ = strings.Cut(path, "?")
	return r.ResolveParts(path, fragment)
}

// ResolveParts resolves an already split path and fragment.
func (r *Resolver) ResolveParts(path, fragment string) Result {
	view := ResolveView(r.stripBase(path))
	res := Result{View: view}
	if ShouldScrollToAnchor(fragment, AnchorsFor(view)) {
		res.Scroll = true
		res.Anchor = fragment
	}
	return res
}

func (r *Resolver) stripBase(path string) string {
	if r.basePath == "/" {
		return path
	}
	if path == r.basePath {
		return "/"
	}
	if rest, ok := strings.CutPrefix(path, r.basePath+"/"); ok {
		return "/" + rest
	}
	return path
}
