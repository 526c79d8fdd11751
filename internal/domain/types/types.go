// Package types contains common types used across the application
package types

import "github.com/cannondawg34/portfolio/internal/domain/catalog"

// FilterResult is one evaluated filter: the matching records in catalog
// order, their count, the catalog size and, for empty results, title
// suggestions.
type FilterResult struct {
	Items       []catalog.Record     `json:"items"`
	Count       int                  `json:"count"`
	Total       int                  `json:"total"`
	Suggestions []catalog.Suggestion `json:"suggestions,omitempty"`
}

// Empty reports whether nothing matched.
func (r FilterResult) Empty() bool {
	return r.Count == 0
}
