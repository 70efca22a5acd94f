package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Format is the output format of a rendered matrix.
type Format string

const (
	// FormatAuto picks FormatSummary on an interactive terminal and FormatYAML otherwise.
	FormatAuto Format = "auto"
	// FormatYAML renders the matrix as a YAML mapping.
	FormatYAML Format = "yaml"
	// FormatJSON renders the matrix as an indented JSON object.
	FormatJSON Format = "json"
	// FormatGemfile renders one block of Gemfile 'gem' lines per composite key.
	FormatGemfile Format = "gemfile"
	// FormatSummary renders one line per composite key with its entry count and fingerprint.
	FormatSummary Format = "summary"
)

// Formats lists every accepted format, FormatAuto first.
var Formats = []Format{FormatAuto, FormatYAML, FormatJSON, FormatGemfile, FormatSummary}

// ParseFormat parses a format name case-insensitively. An empty name is FormatAuto.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatAuto, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", zerr.With(ErrUnknownFormat, "format", name)
}
