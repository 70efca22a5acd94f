// Package config provides the dependencies document loader for gemmatrix.
package config

import (
	"fmt"
	"slices"

	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from the given filesystem.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the dependencies document at path and validates it.
func (l *Loader) Load(path string) (*domain.Config, error) {
	info, err := l.FS.Stat(path)
	if err != nil {
		return nil, domain.NewConfigError(domain.ConfigUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, domain.NewConfigError(domain.ConfigUnreadable, path,
			zerr.With(zerr.New("path is a directory"), "path", path))
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigError(domain.ConfigUnreadable, path, err)
	}

	return l.Parse(path, data)
}

// Parse validates an already-read dependencies document. The checks run in
// order and the first failure is returned:
//
//  1. the document decodes to something other than nothing, null or false;
//  2. the document has a top-level 'dependencies' key;
//  3. 'dependencies' is not empty.
//
// path is only used for error reporting.
func (l *Loader) Parse(path string, data []byte) (*domain.Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, domain.NewConfigError(domain.ConfigUnreadable, path,
			zerr.Wrap(err, "failed to parse dependencies file"))
	}

	doc := documentContent(&root)
	if isFalsy(doc) {
		return nil, domain.NewConfigError(domain.ConfigUnreadable, path, nil)
	}

	depsNode := lookupKey(doc, DependenciesKey)
	if depsNode == nil {
		return nil, domain.NewConfigError(domain.ConfigMissingKey, path, nil)
	}

	if isEmpty(depsNode) {
		return nil, domain.NewConfigError(domain.ConfigEmpty, path, nil)
	}

	if depsNode.Kind != yaml.MappingNode {
		err := zerr.With(domain.ErrConfigMalformed, "path", path)
		return nil, zerr.With(err, "reason", fmt.Sprintf("line %d: 'dependencies' must be a mapping, got %s",
			depsNode.Line, kindName(depsNode)))
	}

	var parsed map[string]map[string][]EntryDTO
	if err := depsNode.Decode(&parsed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigMalformed.Error()), "path", path)
	}

	return l.toConfig(Document{Dependencies: parsed}), nil
}

func (l *Loader) toConfig(doc Document) *domain.Config {
	cfg := &domain.Config{
		Dependencies: make(map[string]map[string][]domain.Dependency, len(doc.Dependencies)),
	}

	for _, platform := range sortedKeys(doc.Dependencies) {
		runtimes := doc.Dependencies[platform]
		converted := make(map[string][]domain.Dependency, len(runtimes))

		for _, runtime := range sortedKeys(runtimes) {
			entries := runtimes[runtime]
			deps := make([]domain.Dependency, 0, len(entries))

			for i := range entries {
				if entries[i].Gem == "" {
					l.Logger.Warn(fmt.Sprintf("entry %d under %s.%s.%s has no 'gem' name, passing it through",
						i, DependenciesKey, platform, runtime))
				}
				deps = append(deps, entries[i].toDomain())
			}
			converted[runtime] = deps
		}
		cfg.Dependencies[platform] = converted
	}

	return cfg
}

// documentContent returns the root content node of a decoded document,
// or nil when the document holds nothing.
func documentContent(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		return resolveAlias(root.Content[0])
	}
	if root.Kind == 0 {
		return nil
	}
	return resolveAlias(root)
}

// isFalsy reports whether the node is absent, null or false.
func isFalsy(node *yaml.Node) bool {
	if node == nil {
		return true
	}
	if node.Kind != yaml.ScalarNode {
		return false
	}
	switch node.ShortTag() {
	case nullTag:
		return true
	case boolTag:
		var b bool
		if err := node.Decode(&b); err != nil {
			return false
		}
		return !b
	default:
		return false
	}
}

// isEmpty reports whether the node is falsy, an empty string or an empty collection.
func isEmpty(node *yaml.Node) bool {
	if isFalsy(node) {
		return true
	}
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(node.Content) == 0
	case yaml.ScalarNode:
		return node.ShortTag() == strTag && node.Value == ""
	default:
		return false
	}
}

// lookupKey returns the value node for key in a mapping node, or nil when the
// node is not a mapping or lacks the key.
func lookupKey(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
