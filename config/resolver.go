package config

import "fmt"

// AISettings holds the resolved ai section.
type AISettings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// UserSettings holds the resolved user section.
type UserSettings struct {
	Language     string
	EmojiEnabled bool
}

// Config is the fully resolved configuration: every schema field
// populated from a scope file (local over global) or its default.
// It is immutable for the remainder of the process invocation; Set
// rebuilds it in full.
type Config struct {
	AI   AISettings
	User UserSettings

	values  map[string]any
	sources map[string]Source
}

// Value returns the resolved value at a dot path.
// Returns ErrInvalidPath if the path is not a declared leaf field.
func (c *Config) Value(path string) (any, error) {
	v, ok := c.values[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return v, nil
}

// Source returns where the value at a dot path came from.
// Unknown paths report SourceDefault.
func (c *Config) Source(path string) Source {
	if src, ok := c.sources[path]; ok {
		return src
	}
	return SourceDefault
}

// Resolver merges scope files over schema defaults into a typed Config.
type Resolver struct {
	schema *Schema
	store  *Store
}

// NewResolver creates a resolver for the given schema and store.
func NewResolver(schema *Schema, store *Store) *Resolver {
	return &Resolver{schema: schema, store: store}
}

// Resolve builds the final configuration. Merge order (lowest to
// highest): schema defaults, global scope, local scope. The merge is
// per field: a section present in a higher scope overrides only the
// keys it defines. Every merged value is coerced to its declared kind
// and checked against its constraint; failures surface as ErrValidation.
func (r *Resolver) Resolve() (*Config, error) {
	merged := Sections{}
	origin := map[string]Source{}

	layers := []struct {
		scope  Scope
		source Source
	}{
		{ScopeGlobal, SourceGlobal},
		{ScopeLocal, SourceLocal},
	}

	for _, layer := range layers {
		raw, err := r.store.Load(layer.scope)
		if err != nil {
			return nil, err
		}
		for secName, fields := range raw {
			if merged[secName] == nil {
				merged[secName] = map[string]any{}
			}
			for name, value := range fields {
				merged[secName][name] = value
				origin[secName+"."+name] = layer.source
			}
		}
	}

	cfg := &Config{
		values:  make(map[string]any),
		sources: make(map[string]Source),
	}

	for _, sec := range r.schema.Sections() {
		for _, f := range sec.Fields {
			path := sec.Name + "." + f.Name

			value := f.Default
			source := SourceDefault
			if raw, ok := merged[sec.Name][f.Name]; ok {
				coerced, err := f.Coerce(raw)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				value = coerced
				source = origin[path]
			}

			cfg.values[path] = value
			cfg.sources[path] = source
		}
	}

	cfg.bind()
	return cfg, nil
}

// bind populates the typed section views from the validated values.
// Paths absent from the schema leave the zero value.
func (c *Config) bind() {
	if v, ok := c.values["ai.model"].(string); ok {
		c.AI.Model = v
	}
	if v, ok := c.values["ai.temperature"].(float64); ok {
		c.AI.Temperature = v
	}
	if v, ok := c.values["ai.max_tokens"].(int); ok {
		c.AI.MaxTokens = v
	}
	if v, ok := c.values["user.language"].(string); ok {
		c.User.Language = v
	}
	if v, ok := c.values["user.emoji_enabled"].(bool); ok {
		c.User.EmojiEnabled = v
	}
}
