package catalog

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of facet values. The nil Set is empty and
// safe to read.
type Set map[string]struct{}

// NewSet builds a Set from values, dropping duplicates.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy. Cloning nil yields an empty, non-nil Set.
func (s Set) Clone() Set {
	out := make(Set, len(s)+1)
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Values returns the members in byte-wise order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same values.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

// Toggle returns a new Set equal to s with value removed if present or added
// if absent. s itself is never modified.
func Toggle(s Set, value string) Set {
	next := s.Clone()
	if next.Has(value) {
		delete(next, value)
	} else {
		next[value] = struct{}{}
	}
	return next
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes an array of strings.
func (s *Set) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewSet(values...)
	return nil
}
