package render

import (
	"io"

	"go.trai.ch/gemmatrix/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const (
	gemField     = "gem"
	versionField = "version"
	strTag       = "!!str"
)

func renderYAML(w io.Writer, m domain.Matrix) error {
	root, err := matrixNode(m)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

// matrixNode builds the document by hand so that keys and entry fields keep
// a fixed order: composite keys sorted, then gem, version and sorted extras.
func matrixNode(m domain.Matrix) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.Keys() {
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, dep := range m[key] {
			entry, err := entryNode(dep)
			if err != nil {
				return nil, err
			}
			list.Content = append(list.Content, entry)
		}
		root.Content = append(root.Content, scalar(key), list)
	}
	return root, nil
}

func entryNode(dep domain.Dependency) (*yaml.Node, error) {
	entry := &yaml.Node{Kind: yaml.MappingNode}
	if dep.Name != "" {
		entry.Content = append(entry.Content, scalar(gemField), scalar(dep.Name))
	}

	if dep.Version.IsSet() {
		var version *yaml.Node
		if dep.Version.IsList() {
			version = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, v := range dep.Version.Values() {
				version.Content = append(version.Content, scalar(v))
			}
		} else {
			version = scalar(dep.Version.String())
		}
		entry.Content = append(entry.Content, scalar(versionField), version)
	}

	for _, key := range dep.ExtraKeys() {
		value := &yaml.Node{}
		if err := value.Encode(dep.Extra[key]); err != nil {
			return nil, err
		}
		entry.Content = append(entry.Content, scalar(key), value)
	}

	return entry, nil
}

// scalar returns a string node. The explicit tag makes the encoder quote
// values such as "1.0" that would otherwise read back as numbers.
func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: value}
}
