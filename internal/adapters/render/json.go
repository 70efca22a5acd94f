package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/gemmatrix/internal/core/domain"
)

// renderJSON writes the same structure as renderYAML. The compact document
// is assembled field by field to keep gem and version ahead of the extras,
// then indented.
func renderJSON(w io.Writer, m domain.Matrix) error {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range m.Keys() {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeJSONKey(&compact, key); err != nil {
			return err
		}
		compact.WriteByte('[')
		for j, dep := range m[key] {
			if j > 0 {
				compact.WriteByte(',')
			}
			if err := writeJSONEntry(&compact, dep); err != nil {
				return err
			}
		}
		compact.WriteByte(']')
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err := out.WriteTo(w)
	return err
}

func writeJSONEntry(buf *bytes.Buffer, dep domain.Dependency) error {
	buf.WriteByte('{')
	first := true
	field := func(name string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		return writeJSONField(buf, name, value)
	}

	if dep.Name != "" {
		if err := field(gemField, dep.Name); err != nil {
			return err
		}
	}
	if dep.Version.IsSet() {
		var version any = dep.Version.String()
		if dep.Version.IsList() {
			version = dep.Version.Values()
		}
		if err := field(versionField, version); err != nil {
			return err
		}
	}
	for _, key := range dep.ExtraKeys() {
		if err := field(key, jsonValue(dep.Extra[key])); err != nil {
			return err
		}
	}

	buf.WriteByte('}')
	return nil
}

func writeJSONField(buf *bytes.Buffer, name string, value any) error {
	if err := writeJSONKey(buf, name); err != nil {
		return err
	}
	return marshal(buf, value)
}

func writeJSONKey(buf *bytes.Buffer, name string) error {
	if err := marshal(buf, name); err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

// marshal appends the JSON encoding of v to buf. Version constraints are
// full of '<' and '>', so HTML escaping is turned off.
func marshal(buf *bytes.Buffer, v any) error {
	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(encoded.Bytes(), []byte("\n")))
	return nil
}

// jsonValue converts YAML-decoded values to types encoding/json accepts.
// Nested mappings decode as map[string]any, except when a key is not a string.
func jsonValue(v any) any {
	switch val := v.(type) {
	case nil:
		return json.RawMessage("null")
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = jsonValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonValue(item)
		}
		return out
	default:
		return val
	}
}
