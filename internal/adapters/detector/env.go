// Package detector picks the output format when the user leaves it to auto-detection.
package detector

import (
	"io"
	"os"

	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/ui/output"
)

// DetectFormat returns the format to use for domain.FormatAuto when writing
// to w. A terminal gets the human-readable summary; pipes, files and CI get
// YAML so that the output can be consumed by other tools.
func DetectFormat(w io.Writer) domain.Format {
	if !output.IsTerminal(w) || isCI() {
		return domain.FormatYAML
	}
	return domain.FormatSummary
}

// ResolveFormat applies the user's choice to the detected format.
// An empty or auto request keeps the detected one.
func ResolveFormat(detected, requested domain.Format) domain.Format {
	switch requested {
	case domain.FormatAuto, "":
		return detected
	default:
		return requested
	}
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
