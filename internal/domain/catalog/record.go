// Package catalog holds the project showcase records and the pure filtering
// engine the projects page is built on: facet derivation, multi-criteria
// filtering, chip toggling and the canonical empty filter state.
package catalog

// Record is one showcased project. Records are seed data: they are built once
// at startup and never mutated afterwards. Slug is assumed unique; it is not
// validated here.
type Record struct {
	Title           string   `json:"title" yaml:"title"`
	Slug            string   `json:"slug" yaml:"slug"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	DownloadPath    string   `json:"downloadPath,omitempty" yaml:"downloadPath,omitempty"`
	DetailsPath     string   `json:"detailsPath,omitempty" yaml:"detailsPath,omitempty"`
	ThumbnailPath   string   `json:"thumbnailPath,omitempty" yaml:"thumbnailPath,omitempty"`
	Stack           []string `json:"stack" yaml:"stack"`
	Category        string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// Long returns LongDescription, falling back to Description.
func (r Record) Long() string {
	if r.LongDescription != "" {
		return r.LongDescription
	}
	return r.Description
}

// HasStack reports whether any of the record's stack tags is in tags.
func (r Record) HasStack(tags Set) bool {
	for _, s := range r.Stack {
		if tags.Has(s) {
			return true
		}
	}
	return false
}
