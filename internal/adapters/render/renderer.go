// Package render writes a dependency matrix out in the supported formats.
package render

import (
	"io"

	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer.
type Renderer struct {
	hasher ports.Hasher
}

// NewRenderer creates a new Renderer. The hasher supplies the fingerprints
// shown by the summary format.
func NewRenderer(hasher ports.Hasher) *Renderer {
	return &Renderer{hasher: hasher}
}

// Render writes m to w in the given format. Keys are always written in
// sorted order and entries in matrix order.
func (r *Renderer) Render(w io.Writer, m domain.Matrix, format domain.Format) error {
	var err error
	switch format {
	case domain.FormatYAML:
		err = renderYAML(w, m)
	case domain.FormatJSON:
		err = renderJSON(w, m)
	case domain.FormatGemfile:
		err = renderGemfile(w, m)
	case domain.FormatSummary:
		err = r.renderSummary(w, m)
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", string(format))
	}
	return nil
}
