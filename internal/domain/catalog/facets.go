package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FacetIndex lists the distinct filter values present in a catalog.
type FacetIndex struct {
	Categories []string `json:"categories"`
	StackTags  []string `json:"stackTags"`
}

// BuildFacetIndex derives the distinct non-empty categories and stack tags of
// catalog, each in locale-aware order. The result depends only on the set of
// values present, not on record order.
func BuildFacetIndex(catalog []Record) FacetIndex {
	categories := Set{}
	tags := Set{}
	for _, r := range catalog {
		if r.Category != "" {
			categories[r.Category] = struct{}{}
		}
		for _, s := range r.Stack {
			if s != "" {
				tags[s] = struct{}{}
			}
		}
	}
	return FacetIndex{
		Categories: localeSorted(categories),
		StackTags:  localeSorted(tags),
	}
}

// localeSorted orders values with the root-locale collation, breaking
// collation ties byte-wise so the order is total.
func localeSorted(s Set) []string {
	values := s.Values()
	// Collators keep scratch buffers; one per call.
	c := collate.New(language.Und)
	sort.SliceStable(values, func(i, j int) bool {
		if cmp := c.CompareString(values[i], values[j]); cmp != 0 {
			return cmp < 0
		}
		return strings.Compare(values[i], values[j]) < 0
	})
	return values
}
