package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gemmatrix/internal/adapters/hasher"
	"go.trai.ch/gemmatrix/internal/core/domain"
)

func TestHasher_HashEntries(t *testing.T) {
	h := hasher.New()

	rake := domain.Dependency{Name: "rake", Version: domain.NewVersion(">= 10")}
	pry := domain.Dependency{Name: "pry"}

	t.Run("stable and hex encoded", func(t *testing.T) {
		first := h.HashEntries([]domain.Dependency{rake, pry})
		assert.Len(t, first, 16)
		assert.Equal(t, first, h.HashEntries([]domain.Dependency{rake, pry}))
	})

	t.Run("order matters", func(t *testing.T) {
		assert.NotEqual(t,
			h.HashEntries([]domain.Dependency{rake, pry}),
			h.HashEntries([]domain.Dependency{pry, rake}))
	})

	t.Run("constraint shape matters", func(t *testing.T) {
		list := domain.Dependency{Name: "rake", Version: domain.NewVersionList(">= 10")}
		assert.NotEqual(t,
			h.HashEntries([]domain.Dependency{rake}),
			h.HashEntries([]domain.Dependency{list}))
	})

	t.Run("extra fields matter", func(t *testing.T) {
		withExtra := domain.Dependency{Name: "pry", Extra: map[string]any{"require": false}}
		assert.NotEqual(t,
			h.HashEntries([]domain.Dependency{pry}),
			h.HashEntries([]domain.Dependency{withExtra}))
	})

	t.Run("field boundaries are delimited", func(t *testing.T) {
		a := domain.Dependency{Name: "ab", Version: domain.NewVersion("c")}
		b := domain.Dependency{Name: "a", Version: domain.NewVersion("bc")}
		assert.NotEqual(t, h.HashEntries([]domain.Dependency{a}), h.HashEntries([]domain.Dependency{b}))
	})
}

func TestHasher_HashMatrix(t *testing.T) {
	h := hasher.New()

	m := domain.Matrix{
		"a0-b0": {{Name: "c0"}},
		"a1-b0": {{Name: "c0"}, {Name: "c3"}},
	}
	same := domain.Matrix{
		"a1-b0": {{Name: "c0"}, {Name: "c3"}},
		"a0-b0": {{Name: "c0"}},
	}
	moved := domain.Matrix{
		"a0-b0": {{Name: "c0"}, {Name: "c3"}},
		"a1-b0": {{Name: "c0"}},
	}

	assert.Equal(t, h.HashMatrix(m), h.HashMatrix(same))
	assert.NotEqual(t, h.HashMatrix(m), h.HashMatrix(moved))
	assert.Len(t, h.HashMatrix(domain.Matrix{}), 16)
}
