package domain

import "go.trai.ch/zerr"

// FailurePrefix precedes every configuration validation message.
const FailurePrefix = "FAILED: [DependenciesParser] "

// ConfigErrorKind identifies which validation rule a dependencies document failed.
type ConfigErrorKind uint8

const (
	// ConfigUnreadable means the document could not be read or decoded to anything.
	ConfigUnreadable ConfigErrorKind = iota + 1
	// ConfigMissingKey means the document has no top-level 'dependencies' key.
	ConfigMissingKey
	// ConfigEmpty means the 'dependencies' key holds nothing.
	ConfigEmpty
)

// Reason returns the fixed, human-readable reason for the kind.
func (k ConfigErrorKind) Reason() string {
	switch k {
	case ConfigUnreadable:
		return "Failed to read Dependencies configuration file."
	case ConfigMissingKey:
		return "Dependencies configuration is invalid. Missing top-level 'dependencies' key."
	case ConfigEmpty:
		return "Dependencies configuration contains no dependencies."
	default:
		return "Dependencies configuration is invalid."
	}
}

// String returns the kind's identifier.
func (k ConfigErrorKind) String() string {
	switch k {
	case ConfigUnreadable:
		return "ConfigUnreadable"
	case ConfigMissingKey:
		return "ConfigMissingKey"
	case ConfigEmpty:
		return "ConfigEmpty"
	default:
		return "ConfigUnknown"
	}
}

// ConfigError reports a dependencies document that failed validation.
// Its message is byte-exact so that tooling matching on it keeps working;
// the path and any underlying cause are carried as fields instead.
type ConfigError struct {
	Kind  ConfigErrorKind
	Path  string
	Cause error
}

// NewConfigError creates a ConfigError of the given kind for path.
func NewConfigError(kind ConfigErrorKind, path string, cause error) *ConfigError {
	return &ConfigError{Kind: kind, Path: path, Cause: cause}
}

func (e *ConfigError) Error() string {
	return FailurePrefix + e.Kind.Reason()
}

// Unwrap returns the underlying cause, if any.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is matches any ConfigError of the same kind.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.Kind == e.Kind
}

var (
	// ErrConfigUnreadable matches validation failures of kind ConfigUnreadable.
	ErrConfigUnreadable = &ConfigError{Kind: ConfigUnreadable}

	// ErrConfigMissingKey matches validation failures of kind ConfigMissingKey.
	ErrConfigMissingKey = &ConfigError{Kind: ConfigMissingKey}

	// ErrConfigEmpty matches validation failures of kind ConfigEmpty.
	ErrConfigEmpty = &ConfigError{Kind: ConfigEmpty}
)

var (
	// ErrConfigMalformed is returned when the dependencies document has the right
	// top-level shape but a nested value has the wrong type.
	ErrConfigMalformed = zerr.New("malformed dependencies configuration")

	// ErrUnknownMatrixKey is returned when a requested composite key is not in the matrix.
	ErrUnknownMatrixKey = zerr.New("unknown matrix key")

	// ErrUnknownFormat is returned when an output format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'auto', 'yaml', 'json', 'gemfile' or 'summary'")

	// ErrUnknownDiscovery is returned when a key discovery mode is not supported.
	ErrUnknownDiscovery = zerr.New("unknown discovery mode, expected 'union' or 'declared'")

	// ErrRenderFailed is returned when the matrix cannot be written out.
	ErrRenderFailed = zerr.New("failed to render matrix")

	// ErrWatcherFailed is returned when the config file cannot be watched.
	ErrWatcherFailed = zerr.New("failed to watch configuration file")
)
