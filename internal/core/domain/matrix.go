package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Matrix maps a composite key ("<platform>-<runtime>") to the merged entries
// that apply to it: the shared entries first, then the platform-specific ones.
type Matrix map[string][]Dependency

// Keys returns the composite keys, sorted.
func (m Matrix) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Equal reports whether two matrices hold the same keys with identical entry lists.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for key, deps := range m {
		otherDeps, ok := other[key]
		if !ok || len(deps) != len(otherDeps) {
			return false
		}
		for i := range deps {
			if !deps[i].Equal(otherDeps[i]) {
				return false
			}
		}
	}
	return true
}

// Filter returns the sub-matrix holding only the given keys.
// With no keys the matrix itself is returned.
func (m Matrix) Filter(keys ...string) (Matrix, error) {
	if len(keys) == 0 {
		return m, nil
	}
	out := make(Matrix, len(keys))
	for _, key := range keys {
		deps, ok := m[key]
		if !ok {
			return nil, zerr.With(ErrUnknownMatrixKey, "key", key)
		}
		out[key] = deps
	}
	return out, nil
}

// Names returns the gem names of the entries under key, in order.
func (m Matrix) Names(key string) []string {
	deps := m[key]
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name)
	}
	return names
}

// AppendEntries returns dst with clones of src appended, so the result never
// aliases the entries of a Config.
func AppendEntries(dst []Dependency, src []Dependency) []Dependency {
	for _, d := range src {
		dst = append(dst, d.clone())
	}
	return dst
}
