package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the declared type of a leaf field.
type Kind string

// Field kinds.
const (
	KindString Kind = "string"
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
)

// Constraint bounds a numeric field. Nil bounds are not enforced.
type Constraint struct {
	Min *float64 // Inclusive lower bound
	Max *float64 // Inclusive upper bound
	GT  *float64 // Exclusive lower bound
}

// Field describes a single leaf configuration value.
type Field struct {
	Name        string      // Field name within its section
	Kind        Kind        // Declared value kind
	Default     any         // Default value, already of the declared kind
	Description string      // Human-readable description for listings
	Constraint  *Constraint // Optional numeric constraint
}

// Section is a named group of fields.
type Section struct {
	Name   string
	Fields []Field
}

// Schema declares every configuration section and field.
// It is immutable after construction.
type Schema struct {
	sections []Section
}

// NewSchema creates a schema from ordered sections.
func NewSchema(sections ...Section) *Schema {
	return &Schema{sections: sections}
}

// DefaultSchema returns the gas configuration schema.
func DefaultSchema() *Schema {
	return NewSchema(
		Section{Name: "ai", Fields: []Field{
			{
				Name:        "model",
				Kind:        KindString,
				Default:     "CohereLabs/c4ai-command-a-03-2025",
				Description: "The model to use for generation",
			},
			{
				Name:        "temperature",
				Kind:        KindFloat,
				Default:     0.7,
				Description: "Temperature for generation (0.0 to 1.0)",
				Constraint:  &Constraint{Min: bound(0), Max: bound(1)},
			},
			{
				Name:        "max_tokens",
				Kind:        KindInt,
				Default:     500,
				Description: "Maximum number of tokens to generate",
				Constraint:  &Constraint{GT: bound(0)},
			},
		}},
		Section{Name: "user", Fields: []Field{
			{
				Name:        "language",
				Kind:        KindString,
				Default:     "en",
				Description: "Language for explanations (ISO 639-1 code)",
			},
			{
				Name:        "emoji_enabled",
				Kind:        KindBool,
				Default:     true,
				Description: "Whether to show emojis in output",
			},
		}},
	)
}

// Sections returns the schema sections in declaration order.
func (s *Schema) Sections() []Section {
	return s.sections
}

// Lookup resolves a dot-separated path (e.g. "ai.temperature") to its
// leaf field. Returns ErrInvalidPath if any segment does not exist or
// the path does not terminate at a leaf field.
func (s *Schema) Lookup(path string) (*Field, error) {
	parts := strings.Split(path, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	for i := range s.sections {
		sec := &s.sections[i]
		if sec.Name != parts[0] {
			continue
		}
		for j := range sec.Fields {
			if sec.Fields[j].Name == parts[1] {
				return &sec.Fields[j], nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
}

// Option describes one leaf path for a "list options" view.
type Option struct {
	Path        string // Dot-separated path
	Description string // Human-readable description
	Default     string // Stringified default value
}

// Options enumerates every leaf path with its description and
// stringified default, in declaration order.
func (s *Schema) Options() []Option {
	var opts []Option
	for _, sec := range s.sections {
		for _, f := range sec.Fields {
			opts = append(opts, Option{
				Path:        sec.Name + "." + f.Name,
				Description: f.Description,
				Default:     fmt.Sprintf("%v", f.Default),
			})
		}
	}
	return opts
}

// Coerce converts a raw value (a YAML scalar or a CLI string) to the
// field's declared kind and enforces its constraint. Returns a value
// of the declared kind, or an error wrapping ErrValidation.
func (f *Field) Coerce(raw any) (any, error) {
	switch f.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string, got %T", ErrValidation, f.Name, raw)
		}
		return s, nil

	case KindBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			return parseBool(f, v)
		default:
			return nil, fmt.Errorf("%w: %s must be a boolean, got %T", ErrValidation, f.Name, raw)
		}

	case KindInt:
		var n int64
		switch v := raw.(type) {
		case int:
			n = int64(v)
		case int64:
			n = v
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: %s must be an integer, got %v", ErrValidation, f.Name, v)
			}
			n = int64(v)
		case string:
			parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrValidation, f.Name, v)
			}
			n = parsed
		default:
			return nil, fmt.Errorf("%w: %s must be an integer, got %T", ErrValidation, f.Name, raw)
		}
		if err := f.checkRange(float64(n)); err != nil {
			return nil, err
		}
		return int(n), nil

	case KindFloat:
		var x float64
		switch v := raw.(type) {
		case float64:
			x = v
		case int:
			x = float64(v)
		case int64:
			x = float64(v)
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s must be a number, got %q", ErrValidation, f.Name, v)
			}
			x = parsed
		default:
			return nil, fmt.Errorf("%w: %s must be a number, got %T", ErrValidation, f.Name, raw)
		}
		if err := f.checkRange(x); err != nil {
			return nil, err
		}
		return x, nil
	}

	return nil, fmt.Errorf("%w: %s has unknown kind %q", ErrValidation, f.Name, f.Kind)
}

// checkRange enforces the field's numeric constraint, if any.
func (f *Field) checkRange(v float64) error {
	c := f.Constraint
	if c == nil {
		return nil
	}
	if c.GT != nil && v <= *c.GT {
		return fmt.Errorf("%w: %s must be greater than %g, got %g", ErrValidation, f.Name, *c.GT, v)
	}
	if c.Min != nil && v < *c.Min {
		return fmt.Errorf("%w: %s must be at least %g, got %g", ErrValidation, f.Name, *c.Min, v)
	}
	if c.Max != nil && v > *c.Max {
		return fmt.Errorf("%w: %s must be at most %g, got %g", ErrValidation, f.Name, *c.Max, v)
	}
	return nil
}

func parseBool(f *Field, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrValidation, f.Name, s)
	}
}

func bound(v float64) *float64 {
	return &v
}
