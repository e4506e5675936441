// Package categories implements the ordered category lists of the budget
// settings.
//
// A Set is an ordered list of unique category names. Order is significant
// for display and fully user-controlled; names are matched exactly, without
// normalization.
package categories

import (
	"errors"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	ErrNameEmpty     = errors.New("the category name must not be empty")
	ErrNameExists    = errors.New("a category with this name already exists")
	ErrNameNotFound  = errors.New("there is no category with this name")
	ErrOrderMismatch = errors.New("the new order must contain every existing category exactly once")
)

// Set is an ordered set of category names.
type Set []string

// NewSet returns a Set with the given names, dropping duplicates while
// keeping first occurrences in order.
func NewSet(names ...string) Set {
	s := make(Set, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(s, name) {
			continue
		}
		s = append(s, name)
	}

	return s
}

// Contains reports whether the set contains the name. Matching is
// case-sensitive and exact.
func (s Set) Contains(name string) bool {
	return slices.Contains(s, name)
}

// Add appends a new category name to the end of the set.
func (s *Set) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameEmpty
	}

	if s.Contains(name) {
		return ErrNameExists
	}

	*s = append(*s, name)
	return nil
}

// Rename replaces a category name, keeping its position.
func (s Set) Rename(from, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrNameEmpty
	}

	i := slices.Index(s, from)
	if i < 0 {
		return ErrNameNotFound
	}

	if to != from && s.Contains(to) {
		return ErrNameExists
	}

	s[i] = to
	return nil
}

// Remove deletes a category name from the set.
func (s *Set) Remove(name string) error {
	i := slices.Index(*s, name)
	if i < 0 {
		return ErrNameNotFound
	}

	*s = slices.Delete(*s, i, i+1)
	return nil
}

// Reorder replaces the order of the set. The new order must be a
// permutation of the current names.
func (s *Set) Reorder(names []string) error {
	if len(names) != len(*s) {
		return ErrOrderMismatch
	}

	next := make(Set, 0, len(names))
	for _, name := range names {
		if !s.Contains(name) || next.Contains(name) {
			return ErrOrderMismatch
		}
		next = append(next, name)
	}

	*s = next
	return nil
}
