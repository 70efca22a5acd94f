package domain

import (
	"maps"
	"reflect"
	"slices"
	"strings"
)

// VersionConstraint is the optional version requirement of a dependency.
// It keeps the shape it was declared with: a single string stays a single
// string and a list stays a list, even a one-element list.
type VersionConstraint struct {
	values []string
	list   bool
}

// NoVersion is the zero VersionConstraint: any version is acceptable.
var NoVersion = VersionConstraint{}

// NewVersion creates a single-string constraint such as "~> 1.0".
func NewVersion(constraint string) VersionConstraint {
	return VersionConstraint{values: []string{constraint}}
}

// NewVersionList creates a list constraint such as [">= 1.0", "< 2.0"].
func NewVersionList(constraints ...string) VersionConstraint {
	return VersionConstraint{values: slices.Clone(constraints), list: true}
}

// IsSet reports whether a constraint was declared at all.
func (v VersionConstraint) IsSet() bool {
	return v.list || len(v.values) > 0
}

// IsList reports whether the constraint was declared as a list.
func (v VersionConstraint) IsList() bool {
	return v.list
}

// Values returns the individual constraints regardless of the declared shape.
func (v VersionConstraint) Values() []string {
	return slices.Clone(v.values)
}

// Equal reports whether two constraints have the same shape and values.
func (v VersionConstraint) Equal(other VersionConstraint) bool {
	return v.list == other.list && slices.Equal(v.values, other.values)
}

func (v VersionConstraint) String() string {
	if v.list {
		return "[" + strings.Join(v.values, ", ") + "]"
	}
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// Dependency is a single gem requirement in the dependencies document.
type Dependency struct {
	// Name is the gem name. It is empty when the entry did not declare one;
	// such entries are passed through rather than rejected.
	Name string
	// Version is the optional constraint.
	Version VersionConstraint
	// Extra holds any other fields of the entry, carried through unchanged.
	Extra map[string]any
}

// Equal reports whether two dependencies are identical, extra fields included.
func (d Dependency) Equal(other Dependency) bool {
	if d.Name != other.Name || !d.Version.Equal(other.Version) {
		return false
	}
	if len(d.Extra) != len(other.Extra) {
		return false
	}
	for k, v := range d.Extra {
		ov, ok := other.Extra[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// ExtraKeys returns the names of the extra fields, sorted.
func (d Dependency) ExtraKeys() []string {
	return slices.Sorted(maps.Keys(d.Extra))
}

func (d Dependency) clone() Dependency {
	out := Dependency{Name: d.Name, Version: d.Version}
	out.Version.values = slices.Clone(d.Version.values)
	if d.Extra != nil {
		out.Extra = maps.Clone(d.Extra)
	}
	return out
}
