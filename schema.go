package cardkit

import js "github.com/reoring/cardkit/jsonschema"

// BaseJSONSchema returns the object schema every element of typeString
// shares: the type discriminator and the base contract keys. Concrete types
// merge their own properties into it.
func BaseJSONSchema(typeString string) *js.Schema {
	return &js.Schema{
		Title: typeString,
		Type:  "object",
		Properties: map[string]*js.Schema{
			"type": {Type: "string", Const: typeString},
			"id":   js.String(),
			"fallback": {OneOf: []*js.Schema{
				{Type: "string", Description: "\"drop\", matched case-insensitively"},
				{Type: "object", Description: "substitute element of the same family"},
			}},
			"requires": {
				Type:                 "object",
				Description:          "capability name to minimum semantic version",
				AdditionalProperties: js.String(),
			},
		},
		Required: []string{"type"},
	}
}
