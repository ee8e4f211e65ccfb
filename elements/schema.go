package elements

import (
	"github.com/reoring/cardkit"
	js "github.com/reoring/cardkit/jsonschema"
)

// JSONSchema describes a card whose body and actions use the types
// registered in f. Built-in types carry their full property set; other
// registered types are open objects with the base contract keys.
func (f Families) JSONSchema() *js.Schema {
	builtinElements := map[string]func() *js.Schema{
		TypeTextBlock: textBlockSchema,
		TypeImage:     imageSchema,
		TypeContainer: func() *js.Schema { return containerSchema(js.Ref(FamilyElements)) },
	}
	builtinActions := map[string]func() *js.Schema{
		TypeOpenURL: openURLSchema,
		TypeSubmit:  submitSchema,
	}

	card := js.Object(map[string]*js.Schema{
		"type":         {Type: "string", Const: TypeCard},
		"version":      js.String(),
		"fallbackText": js.String(),
		"speak":        js.String(),
		"body":         {Type: "array", Items: js.Ref(FamilyElements)},
		"actions":      {Type: "array", Items: js.Ref(FamilyActions)},
	}, "type")
	card.Title = TypeCard
	card.Defs = map[string]*js.Schema{
		FamilyElements: {OneOf: familySchemas(f.Elements, builtinElements)},
		FamilyActions:  {OneOf: familySchemas(f.Actions, builtinActions)},
	}
	return js.Document(card)
}

func familySchemas(r *cardkit.Registry, builtin map[string]func() *js.Schema) []*js.Schema {
	if r == nil {
		return nil
	}
	var out []*js.Schema
	for _, typ := range r.Types() {
		if mk, ok := builtin[typ]; ok {
			out = append(out, mk())
			continue
		}
		out = append(out, cardkit.BaseJSONSchema(typ))
	}
	return out
}
