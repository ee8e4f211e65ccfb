package cardkit

import (
	"github.com/goccy/go-json"
)

// SerializeToJSONValue emits the base contract: additional properties, then
// type, id, fallback and requires on top. Concrete types call it first and add
// their own keys. The id emitted is the one stored by the base SetID; a type
// overriding ID or SetID must set out["id"] itself.
func (b *BaseElement) SerializeToJSONValue() (map[string]any, error) {
	out := make(map[string]any, len(b.additional)+4)
	for k, v := range b.additional {
		out[k] = CloneValue(v)
	}
	if b.typeString != "" {
		out["type"] = b.typeString
	}
	if b.id != "" {
		out["id"] = b.id
	}
	switch b.fallbackType {
	case FallbackDrop:
		out["fallback"] = "drop"
	case FallbackContent:
		fb, err := b.fallbackContent.SerializeToJSONValue()
		if err != nil {
			return nil, err
		}
		out["fallback"] = fb
	}
	if len(b.requires) > 0 {
		reqs := make(map[string]any, len(b.requires))
		for name, v := range b.requires {
			reqs[name] = v.String()
		}
		out["requires"] = reqs
	}
	return out, nil
}

// Serialize renders e as compact JSON.
func Serialize(e Element) (string, error) {
	v, err := e.SerializeToJSONValue()
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalValue renders a serialized value as JSON, indented when indent is
// non-empty.
func MarshalValue(v any, indent string) ([]byte, error) {
	if indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", indent)
}
