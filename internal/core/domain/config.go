package domain

import (
	"maps"
	"slices"
)

// SharedKey is the reserved platform key whose entries apply to every platform.
const SharedKey = "shared"

// KeySeparator joins a platform key and a runtime key into a composite key.
const KeySeparator = "-"

// Config is a validated dependencies document.
//
// Dependencies maps a platform key (axis A, e.g. "posix-dev") to a runtime key
// (axis B, e.g. "r2.4") to the ordered entries declared for that pairing.
type Config struct {
	Dependencies map[string]map[string][]Dependency
}

// Shared returns the entries declared under SharedKey, keyed by runtime key.
// It is never nil.
func (c *Config) Shared() map[string][]Dependency {
	if shared, ok := c.Dependencies[SharedKey]; ok && shared != nil {
		return shared
	}
	return map[string][]Dependency{}
}

// Platforms returns the platform keys other than SharedKey, sorted.
func (c *Config) Platforms() []string {
	platforms := make([]string, 0, len(c.Dependencies))
	for key := range c.Dependencies {
		if key == SharedKey {
			continue
		}
		platforms = append(platforms, key)
	}
	slices.Sort(platforms)
	return platforms
}

// Runtimes returns the runtime keys declared under the given platform key, sorted.
func (c *Config) Runtimes(platform string) []string {
	return slices.Sorted(maps.Keys(c.Dependencies[platform]))
}

// CompositeKey joins a platform key and a runtime key.
func CompositeKey(platform, runtime string) string {
	return platform + KeySeparator + runtime
}
