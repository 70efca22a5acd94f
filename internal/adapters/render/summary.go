package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/ui/output"
	"go.trai.ch/gemmatrix/internal/ui/style"
)

// renderSummary writes one aligned line per composite key with its entry
// count and fingerprint, followed by a total line for the whole matrix.
// Colour is only used when w is a terminal.
func (r *Renderer) renderSummary(w io.Writer, m domain.Matrix) error {
	out := output.NewForData(w)
	keys := m.Keys()

	keyWidth := len("total")
	countWidth := 1
	for _, key := range keys {
		keyWidth = max(keyWidth, len(key))
		countWidth = max(countWidth, len(strconv.Itoa(len(m[key]))))
	}
	countWidth = max(countWidth, len(strconv.Itoa(len(keys))))

	for _, key := range keys {
		line := fmt.Sprintf("%s  %s  %s",
			colored(out, fmt.Sprintf("%-*s", keyWidth, key), style.Iris),
			fmt.Sprintf("%*d %-7s", countWidth, len(m[key]), plural(len(m[key]), "entry", "entries")),
			colored(out, r.hasher.HashEntries(m[key]), style.Slate),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	line := fmt.Sprintf("%s  %s  %s",
		fmt.Sprintf("%-*s", keyWidth, "total"),
		fmt.Sprintf("%*d %-7s", countWidth, len(keys), plural(len(keys), "key", "keys")),
		colored(out, r.hasher.HashMatrix(m), style.Slate),
	)
	_, err := fmt.Fprintln(w, line)
	return err
}

func colored(out *termenv.Output, s string, color lipgloss.Color) string {
	return out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
