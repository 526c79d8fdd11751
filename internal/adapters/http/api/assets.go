package api

import (
	"strings"

	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/internal/domain/model"
)

// assetResolver prefixes site-relative asset references with the deployment
// base path. Records keep their references as opaque strings; only responses
// carry resolved ones.
type assetResolver struct {
	prefix string
}

func newAssetResolver(basePath string) assetResolver {
	return assetResolver{prefix: strings.TrimSuffix("/"+strings.Trim(basePath, "/"), "/")}
}

// resolve joins p onto the base path. Empty and absolute references
// (scheme or protocol-relative) pass through.
func (a assetResolver) resolve(p string) string {
	if p == "" || strings.Contains(p, "://") || strings.HasPrefix(p, "//") {
		return p
	}
	return a.prefix + "/" + strings.TrimPrefix(p, "/")
}

// project returns a response copy of r with resolved asset paths and the
// long description filled in.
func (a assetResolver) project(r catalog.Record) catalog.Record {
	out := r
	out.LongDescription = r.Long()
	out.DownloadPath = a.resolve(r.DownloadPath)
	out.DetailsPath = a.resolve(r.DetailsPath)
	out.ThumbnailPath = a.resolve(r.ThumbnailPath)
	out.Stack = append([]string{}, r.Stack...)
	return out
}

func (a assetResolver) game(g model.Game) model.Game {
	out := g
	out.ThumbnailPath = a.resolve(g.ThumbnailPath)
	out.DownloadPath = a.resolve(g.DownloadPath)
	out.VideoPath = a.resolve(g.VideoPath)
	return out
}
