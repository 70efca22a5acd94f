package ports

import "go.trai.ch/gemmatrix/internal/core/domain"

// Hasher defines the interface for fingerprinting matrix contents.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashEntries returns a stable fingerprint of an ordered entry list.
	HashEntries(deps []domain.Dependency) string
	// HashMatrix returns a stable fingerprint of a whole matrix.
	HashMatrix(m domain.Matrix) string
}
