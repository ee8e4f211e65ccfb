// Package jsonschema is a minimal JSON Schema model used to export the shape
// of registered element families.
package jsonschema

// Draft identifies the dialect written by Document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	Schema      string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Const   any    `json:"const,omitempty"`
	Enum    []any  `json:"enum,omitempty"`
	Default any    `json:"default,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// Ref returns a schema referring to the definition name of the document.
func Ref(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Document returns a copy of root marked with the Draft dialect.
func Document(root *Schema) *Schema {
	cp := *root
	cp.Schema = Draft
	return &cp
}

// String returns a schema for a JSON string.
func String() *Schema { return &Schema{Type: "string"} }

// Bool returns a schema for a JSON boolean.
func Bool() *Schema { return &Schema{Type: "boolean"} }

// Integer returns a schema for a JSON integer.
func Integer() *Schema { return &Schema{Type: "integer"} }

// StringEnum returns a string schema restricted to values.
func StringEnum(values ...string) *Schema {
	s := String()
	for _, v := range values {
		s.Enum = append(s.Enum, v)
	}
	return s
}

// Object returns an object schema with the given properties.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required}
}

// Merge copies properties and required names from src into dst; properties
// already present in dst are kept.
func Merge(dst, src *Schema) *Schema {
	if src == nil {
		return dst
	}
	if dst.Properties == nil {
		dst.Properties = map[string]*Schema{}
	}
	for k, v := range src.Properties {
		if _, ok := dst.Properties[k]; !ok {
			dst.Properties[k] = v
		}
	}
	dst.Required = append(dst.Required, src.Required...)
	return dst
}
