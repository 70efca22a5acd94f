// Package hasher fingerprints matrix contents with xxhash.
package hasher

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher implements ports.Hasher.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// HashEntries returns the fingerprint of an ordered entry list.
func (h *Hasher) HashEntries(deps []domain.Dependency) string {
	digest := xxhash.New()
	hashEntries(deps, digest)
	return fmt.Sprintf("%016x", digest.Sum64())
}

// HashMatrix returns the fingerprint of a whole matrix, independent of map order.
func (h *Hasher) HashMatrix(m domain.Matrix) string {
	digest := xxhash.New()
	for _, key := range m.Keys() {
		_, _ = digest.WriteString(key)
		_, _ = digest.Write([]byte{0})
		hashEntries(m[key], digest)
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}

func hashEntries(deps []domain.Dependency, digest *xxhash.Digest) {
	for _, dep := range deps {
		_, _ = digest.WriteString(dep.Name)
		_, _ = digest.Write([]byte{0})

		// The shape of the constraint is part of its identity.
		if dep.Version.IsList() {
			_, _ = digest.Write([]byte{'['})
		}
		for _, v := range dep.Version.Values() {
			_, _ = digest.WriteString(v)
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.Write([]byte{0}) // Section separator

		for _, key := range slices.Sorted(maps.Keys(dep.Extra)) {
			_, _ = digest.WriteString(key)
			_, _ = digest.Write([]byte{'='})
			_, _ = fmt.Fprintf(digest, "%#v", dep.Extra[key])
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})
}
