// Package matrix implements the merge of shared and platform-specific
// dependency entries into a flat matrix.
package matrix

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Discovery selects which runtime keys produce a composite key for a platform.
type Discovery uint8

const (
	// DiscoverUnion pairs every platform with every runtime key declared either
	// under domain.SharedKey or under the platform itself.
	DiscoverUnion Discovery = iota
	// DiscoverDeclared pairs a platform only with the runtime keys it declares;
	// runtime keys that appear only under domain.SharedKey produce nothing.
	DiscoverDeclared
)

func (d Discovery) String() string {
	if d == DiscoverDeclared {
		return "declared"
	}
	return "union"
}

// ParseDiscovery parses a discovery mode name. An empty name is DiscoverUnion.
func ParseDiscovery(name string) (Discovery, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "union":
		return DiscoverUnion, nil
	case "declared":
		return DiscoverDeclared, nil
	default:
		return DiscoverUnion, zerr.With(domain.ErrUnknownDiscovery, "discovery", name)
	}
}

// Builder computes a domain.Matrix from a validated domain.Config.
type Builder struct {
	logger    ports.Logger
	discovery Discovery
}

// NewBuilder creates a new Builder using DiscoverUnion.
func NewBuilder(logger ports.Logger) *Builder {
	return &Builder{logger: logger}
}

// WithDiscovery returns a copy of the Builder using the given discovery mode.
func (b *Builder) WithDiscovery(d Discovery) *Builder {
	return &Builder{logger: b.logger, discovery: d}
}

// Build returns, for every platform key other than domain.SharedKey and every
// runtime key discovered for it, the shared entries for that runtime followed
// by the platform's own entries, each group in declaration order.
//
// Build does not modify cfg and the returned entries do not alias it.
func (b *Builder) Build(cfg *domain.Config) domain.Matrix {
	shared := cfg.Shared()
	platforms := cfg.Platforms()
	m := make(domain.Matrix)
	usedRuntimes := make(map[string]struct{}, len(shared))
	origins := make(map[string]string)

	if len(platforms) == 0 {
		b.logger.Warn("no platforms declared besides " + domain.SharedKey + ", the matrix is empty")
	}

	for _, platform := range platforms {
		declared := cfg.Dependencies[platform]
		for _, runtime := range b.runtimes(shared, declared) {
			key := domain.CompositeKey(platform, runtime)
			if prev, ok := origins[key]; ok {
				b.logger.Warn(fmt.Sprintf("matrix key %s is produced by both %s and %s/%s, keeping the latter",
					key, prev, platform, runtime))
			}
			origins[key] = platform + "/" + runtime

			specific := declared[runtime]
			entries := make([]domain.Dependency, 0, len(shared[runtime])+len(specific))
			entries = domain.AppendEntries(entries, shared[runtime])
			entries = domain.AppendEntries(entries, specific)

			m[key] = entries
			usedRuntimes[runtime] = struct{}{}
		}
	}

	if len(platforms) > 0 {
		for _, runtime := range slices.Sorted(maps.Keys(shared)) {
			if _, ok := usedRuntimes[runtime]; !ok {
				b.logger.Warn(fmt.Sprintf("shared runtime %s is not used by any platform", runtime))
			}
		}
	}

	return m
}

// runtimes returns the runtime keys to pair with a platform, sorted.
func (b *Builder) runtimes(shared, declared map[string][]domain.Dependency) []string {
	keys := slices.Collect(maps.Keys(declared))
	if b.discovery == DiscoverUnion {
		for runtime := range shared {
			if _, ok := declared[runtime]; !ok {
				keys = append(keys, runtime)
			}
		}
	}
	slices.Sort(keys)
	return keys
}
