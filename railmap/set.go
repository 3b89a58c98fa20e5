package railmap

import "sort"

// Set is a set of segment keys.
type Set map[Key]struct{}

// NewSet returns a set holding keys.
func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}

	return s
}

// Has reports membership. A nil Set is empty.
func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add inserts k and reports whether it was absent.
func (s Set) Add(k Key) bool {
	if s.Has(k) {
		return false
	}
	s[k] = struct{}{}

	return true
}

// Remove deletes k and reports whether it was present.
func (s Set) Remove(k Key) bool {
	if !s.Has(k) {
		return false
	}
	delete(s, k)

	return true
}

// Keys returns the members sorted.
func (s Set) Keys() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}

	return out
}
