package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/gemmatrix/internal/core/domain"
)

// renderGemfile writes one block per composite key:
//
//	# posix-dev-r2.4
//	gem 'rake', '>= 10', '< 13'
//	gem 'pry', require: false
//
// Entries without a gem name are skipped. Extra fields are written as
// keyword arguments when their value is a string, a bool or a number.
func renderGemfile(w io.Writer, m domain.Matrix) error {
	bw := bufio.NewWriter(w)
	for i, key := range m.Keys() {
		if i > 0 {
			_, _ = bw.WriteString("\n")
		}
		_, _ = bw.WriteString("# " + key + "\n")
		for _, dep := range m[key] {
			if dep.Name == "" {
				continue
			}
			_, _ = bw.WriteString(gemLine(dep) + "\n")
		}
	}
	return bw.Flush()
}

func gemLine(dep domain.Dependency) string {
	args := []string{rubyString(dep.Name)}
	for _, v := range dep.Version.Values() {
		args = append(args, rubyString(v))
	}
	for _, key := range dep.ExtraKeys() {
		if value, ok := rubyLiteral(dep.Extra[key]); ok {
			args = append(args, key+": "+value)
		}
	}
	return "gem " + strings.Join(args, ", ")
}

func rubyLiteral(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return rubyString(val), true
	case bool:
		return strconv.FormatBool(val), true
	case int, int64, uint64, float64:
		return fmt.Sprint(val), true
	default:
		return "", false
	}
}

func rubyString(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
