package catalog

import "github.com/sahilm/fuzzy"

// Suggestion is a record title that loosely matches a query.
type Suggestion struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Score int    `json:"score"`
}

// Suggest fuzzy-matches query against record titles, best match first.
// It returns at most limit suggestions; limit <= 0 means no cap.
func Suggest(catalog []Record, query string, limit int) []Suggestion {
	titles := make([]string, len(catalog))
	for i, r := range catalog {
		titles[i] = r.Title
	}
	found := fuzzy.Find(query, titles)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	out := make([]Suggestion, 0, len(found))
	for _, m := range found {
		r := catalog[m.Index]
		out = append(out, Suggestion{Slug: r.Slug, Title: r.Title, Score: m.Score})
	}
	return out
}
