package skill

import "github.com/google/uuid"

// Set is an unordered collection of skill ids without duplicates.
type Set map[uuid.UUID]struct{}

func NewSet(ids []uuid.UUID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// IntersectionSize counts the ids present in both sets.
func (s Set) IntersectionSize(other Set) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if large.Contains(id) {
			n++
		}
	}
	return n
}

// ContainsAll reports whether every id of other is in s.
func (s Set) ContainsAll(other Set) bool {
	if len(other) > len(s) {
		return false
	}
	for id := range other {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}
