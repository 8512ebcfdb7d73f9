package config

import (
	"fmt"
	"strings"
)

// Manager provides dot-path get/set access to the resolved
// configuration. It is constructed once at process start and passed
// explicitly to command handlers.
type Manager struct {
	schema   *Schema
	store    *Store
	resolver *Resolver
	current  *Config
}

// NewManager creates a manager over the default schema and resolves
// the initial configuration.
func NewManager(store *Store) (*Manager, error) {
	return NewManagerWithSchema(DefaultSchema(), store)
}

// NewManagerWithSchema creates a manager over an explicit schema.
func NewManagerWithSchema(schema *Schema, store *Store) (*Manager, error) {
	resolver := NewResolver(schema, store)
	cfg, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	return &Manager{
		schema:   schema,
		store:    store,
		resolver: resolver,
		current:  cfg,
	}, nil
}

// Current returns the resolved configuration.
func (m *Manager) Current() *Config {
	return m.current
}

// Store returns the underlying scope file store.
func (m *Manager) Store() *Store {
	return m.store
}

// Options enumerates every leaf path with its description and default.
func (m *Manager) Options() []Option {
	return m.schema.Options()
}

// Get returns the current resolved value at a dot path.
// Returns ErrInvalidPath if the path is not a declared leaf field.
func (m *Manager) Get(path string) (any, error) {
	if _, err := m.schema.Lookup(path); err != nil {
		return nil, err
	}
	return m.current.Value(path)
}

// Set validates and persists a single value to the given scope file,
// then re-resolves so subsequent Get calls observe the change. The raw
// value is coerced to the field's declared kind; the coerced value is
// returned. Fails with ErrInvalidPath for an undeclared path and
// ErrValidation for a value outside the field's constraint.
func (m *Manager) Set(path, raw string, scope Scope) (any, error) {
	field, err := m.schema.Lookup(path)
	if err != nil {
		return nil, err
	}

	value, err := field.Coerce(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sections, err := m.store.Load(scope)
	if err != nil {
		return nil, err
	}

	secName := path[:strings.IndexByte(path, '.')]
	if sections[secName] == nil {
		sections[secName] = map[string]any{}
	}
	sections[secName][field.Name] = value

	if err := m.store.Save(scope, sections); err != nil {
		return nil, err
	}

	cfg, err := m.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	m.current = cfg

	return value, nil
}
