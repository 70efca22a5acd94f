package ports

import (
	"io"

	"go.trai.ch/gemmatrix/internal/core/domain"
)

// Renderer defines the interface for writing a matrix out.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes m to w in the given concrete format (never domain.FormatAuto).
	Render(w io.Writer, m domain.Matrix, format domain.Format) error
}
