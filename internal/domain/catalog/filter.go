package catalog

import "strings"

// Filter returns the records of catalog matching every restriction of state,
// in catalog order. It allocates a new slice and never touches its inputs.
//
// A record matches when
//   - the trimmed query is empty, or the lower-cased join of title,
//     description, stack tags and category contains it;
//   - no category is selected, or the record's category is selected;
//   - no stack tag is selected, or at least one of its tags is selected.
func Filter(catalog []Record, state State) []Record {
	q := state.NormalizedQuery()
	out := make([]Record, 0, len(catalog))
	for _, r := range catalog {
		if matches(r, q, state.Categories, state.Stack) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, q string, categories, stack Set) bool {
	if q != "" && !strings.Contains(searchText(r), q) {
		return false
	}
	if categories.Len() > 0 && (r.Category == "" || !categories.Has(r.Category)) {
		return false
	}
	if stack.Len() > 0 && !r.HasStack(stack) {
		return false
	}
	return true
}

// searchText joins the searchable fields, skipping empty ones.
func searchText(r Record) string {
	parts := make([]string, 0, len(r.Stack)+3)
	if r.Title != "" {
		parts = append(parts, r.Title)
	}
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	for _, s := range r.Stack {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if r.Category != "" {
		parts = append(parts, r.Category)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
