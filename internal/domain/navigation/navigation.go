// Package navigation maps locations to page views and decides when a
// fragment should trigger a scroll to an in-page anchor.
package navigation

import (
	"strings"
)

// ViewID identifies one of the fixed pages of the site.
type ViewID string

// Known views. Home is the catch-all.
const (
	Home     ViewID = "home"
	About    ViewID = "about"
	Projects ViewID = "projects"
	Games    ViewID = "games"
)

// Anchor names rendered by the pages.
const (
	AnchorWork        = "work"
	AnchorProjectsTop = "projectsTop"
)

// routes maps a trimmed path to its view; every view but Home is served at
// its own name and Home at the root.
var routes = func() map[string]ViewID {
	m := map[string]ViewID{"": Home}
	for _, v := range Views() {
		if v != Home {
			m[string(v)] = v
		}
	}
	return m
}()

var viewAnchors = map[ViewID][]string{
	Home:     {AnchorWork},
	Projects: {AnchorProjectsTop},
}

// Views lists every view in navigation order.
func Views() []ViewID {
	return []ViewID{Home, About, Projects, Games}
}

// ResolveView maps path to a view. Leading and trailing slashes are ignored;
// anything unrecognised resolves to Home.
func ResolveView(path string) ViewID {
	if v, ok := routes[strings.Trim(path, "/")]; ok {
		return v
	}
	return Home
}

// ShouldScrollToAnchor reports whether fragment names one of known.
// The empty fragment never scrolls.
func ShouldScrollToAnchor(fragment string, known map[string]struct{}) bool {
	if fragment == "" {
		return false
	}
	_, ok := known[fragment]
	return ok
}

// AnchorsFor returns the anchors a view renders as a lookup set.
func AnchorsFor(v ViewID) map[string]struct{} {
	out := make(map[string]struct{}, len(viewAnchors[v]))
	for _, a := range viewAnchors[v] {
		out[a] = struct{}{}
	}
	return out
}
