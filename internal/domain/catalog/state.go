package catalog

import (
	"encoding/json"
	"strings"
)

// State is the user's current filter input: free text plus the two facet
// selections. It is a plain value replaced on every change; all field values
// are valid and independent of each other, so there is no transition logic.
type State struct {
	Query      string `json:"query"`
	Categories Set    `json:"categories"`
	Stack      Set    `json:"stack"`
}

// Clear returns the canonical empty state.
func Clear() State {
	return State{Query: "", Categories: Set{}, Stack: Set{}}
}

// NormalizedQuery is the trimmed, lower-cased query used for matching.
func (s State) NormalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(s.Query))
}

// IsEmpty reports whether the state restricts nothing.
func (s State) IsEmpty() bool {
	return s.NormalizedQuery() == "" && s.Categories.Len() == 0 && s.Stack.Len() == 0
}

// Key returns a canonical string for the state. Two states share a key
// exactly when they select the same records from any catalog; toggle order
// does not matter. Values are JSON-quoted so no separator can be forged.
func (s State) Key() string {
	key, err := json.Marshal([3]any{s.NormalizedQuery(), s.Categories.Values(), s.Stack.Values()})
	if err != nil {
		// Strings and string slices always encode.
		panic(err)
	}
	return string(key)
}
