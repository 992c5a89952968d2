// Package models defines the core domain models for schema-driven service configuration.
package models

// JSONSchema represents the root of a section's JSON Schema document.
type JSONSchema struct {
	Type        string               `json:"type"`
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Enum        []any                `json:"enum,omitempty"`
	Examples    []any                `json:"examples,omitempty"`
}

// Property represents a JSON Schema node below the root. Nodes form a tree.
type Property struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Enum        []any                `json:"enum,omitempty"`
	Default     any                  `json:"default,omitempty"`
	Format      string               `json:"format,omitempty"`
	MinLength   *int                 `json:"minLength,omitempty"`
	MaxLength   *int                 `json:"maxLength,omitempty"`
	Pattern     string               `json:"pattern,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Examples    []any                `json:"examples,omitempty"`
}

// IsPrimitive reports whether the schema root describes a bare primitive
// value rather than an object or array.
func (s *JSONSchema) IsPrimitive() bool {
	switch s.Type {
	case "string", "number", "integer", "boolean":
		return true
	default:
		return false
	}
}
