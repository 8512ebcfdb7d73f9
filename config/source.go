package config

import "fmt"

// Scope names a persistence location for configuration.
type Scope string

// Configuration scope constants.
const (
	// ScopeLocal is the per-repository config (.gas.yaml in the git root).
	ScopeLocal Scope = "local"

	// ScopeGlobal is the per-user config (~/.config/gas/config.yml).
	ScopeGlobal Scope = "global"
)

// ParseScope converts a scope name to a Scope.
// Returns ErrUnknownScope for anything other than "local" or "global".
func ParseScope(name string) (Scope, error) {
	switch Scope(name) {
	case ScopeLocal:
		return ScopeLocal, nil
	case ScopeGlobal:
		return ScopeGlobal, nil
	default:
		return "", fmt.Errorf("%w: %q (must be local or global)", ErrUnknownScope, name)
	}
}

// Source indicates where a resolved configuration value came from.
type Source string

// Configuration source constants.
const (
	// SourceDefault indicates the value is the schema default.
	SourceDefault Source = "default"

	// SourceGlobal indicates the value came from the global scope file.
	SourceGlobal Source = "global"

	// SourceLocal indicates the value came from the local scope file.
	SourceLocal Source = "local"
)
