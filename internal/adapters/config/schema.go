package config

import (
	"fmt"
	"slices"

	"go.trai.ch/gemmatrix/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Field names of a dependency entry that carry meaning.
const (
	gemField     = "gem"
	versionField = "version"
)

// DependenciesKey is the required top-level key of a dependencies file.
const DependenciesKey = "dependencies"

// Document represents the structure of a dependencies file once its top-level
// shape has been validated.
type Document struct {
	Dependencies map[string]map[string][]EntryDTO `yaml:"dependencies"`
}

// EntryDTO represents a single dependency entry in the configuration.
type EntryDTO struct {
	Gem     string
	Version VersionDTO
	Extra   map[string]any
}

// VersionDTO represents the 'version' field, either a string or a list of strings.
type VersionDTO struct {
	Values []string
	List   bool
	Set    bool
}

// UnmarshalYAML decodes a dependency entry mapping. Fields other than 'gem'
// and 'version' are kept in Extra as generic values. Merge keys ('<<') are
// expanded; fields written in the entry itself override merged ones.
func (e *EntryDTO) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: dependency entry must be a mapping, got %s", node.Line, kindName(node))
	}

	pairs, err := entryPairs(node, 0)
	if err != nil {
		return err
	}

	for _, p := range pairs {
		keyNode, valueNode := p[0], p[1]

		switch keyNode.Value {
		case gemField:
			if valueNode.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: 'gem' must be a string, got %s", valueNode.Line, kindName(valueNode))
			}
			e.Gem = ""
			if valueNode.ShortTag() != nullTag {
				e.Gem = valueNode.Value
			}
		case versionField:
			e.Version = VersionDTO{}
			if err := e.Version.UnmarshalYAML(valueNode); err != nil {
				return err
			}
		default:
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return err
			}
			if e.Extra == nil {
				e.Extra = make(map[string]any)
			}
			e.Extra[keyNode.Value] = value
		}
	}
	return nil
}

// maxMergeDepth bounds nested merge keys.
const maxMergeDepth = 16

// entryPairs flattens a mapping into key/value pairs in application order:
// merged mappings first, then the mapping's own keys, so that later pairs
// override earlier ones. Within a sequence of merged mappings the first one
// wins.
func entryPairs(node *yaml.Node, depth int) ([][2]*yaml.Node, error) {
	if depth > maxMergeDepth {
		return nil, fmt.Errorf("line %d: merge keys nested too deeply", node.Line)
	}

	var merged, own [][2]*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], resolveAlias(node.Content[i+1])
		if keyNode.ShortTag() != mergeTag {
			own = append(own, [2]*yaml.Node{keyNode, valueNode})
			continue
		}

		var sources []*yaml.Node
		switch valueNode.Kind {
		case yaml.MappingNode:
			sources = []*yaml.Node{valueNode}
		case yaml.SequenceNode:
			for _, item := range slices.Backward(valueNode.Content) {
				sources = append(sources, resolveAlias(item))
			}
		default:
			return nil, fmt.Errorf("line %d: merge key must reference a mapping, got %s", valueNode.Line, kindName(valueNode))
		}

		for _, src := range sources {
			if src.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge key must reference a mapping, got %s", src.Line, kindName(src))
			}
			pairs, err := entryPairs(src, depth+1)
			if err != nil {
				return nil, err
			}
			merged = append(merged, pairs...)
		}
	}
	return append(merged, own...), nil
}

// UnmarshalYAML decodes a version constraint, keeping whether it was a list.
func (v *VersionDTO) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == nullTag {
			return nil
		}
		v.Values = []string{node.Value}
		v.Set = true
		return nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: version constraints must be strings, got %s", item.Line, kindName(item))
			}
			values = append(values, item.Value)
		}
		v.Values = values
		v.List = true
		v.Set = true
		return nil
	default:
		return fmt.Errorf("line %d: 'version' must be a string or a list of strings, got %s", node.Line, kindName(node))
	}
}

// toDomain converts the entry to a domain.Dependency.
func (e *EntryDTO) toDomain() domain.Dependency {
	dep := domain.Dependency{
		Name:  e.Gem,
		Extra: e.Extra,
	}
	switch {
	case e.Version.List:
		dep.Version = domain.NewVersionList(e.Version.Values...)
	case e.Version.Set:
		dep.Version = domain.NewVersion(e.Version.Values[0])
	}
	return dep
}

const (
	nullTag  = "!!null"
	boolTag  = "!!bool"
	strTag   = "!!str"
	mergeTag = "!!merge"
)

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + node.ShortTag()
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
