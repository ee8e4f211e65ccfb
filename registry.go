package cardkit

import (
	"sort"
	"strconv"
	"sync"

	"github.com/reoring/cardkit/i18n"
)

// ElementParser parses one concrete element type. family is the registry the
// parser was reached through; it parses fallback content and children.
type ElementParser interface {
	Deserialize(pc *ParseContext, family Parser, v any) (Element, error)
}

// ElementParserFunc adapts a function to ElementParser.
type ElementParserFunc func(pc *ParseContext, family Parser, v any) (Element, error)

func (f ElementParserFunc) Deserialize(pc *ParseContext, family Parser, v any) (Element, error) {
	return f(pc, family, v)
}

// ParserOf turns a PopulateFunc into an ElementParser running the full
// Deserialize contract.
func ParserOf[T Element](populate PopulateFunc[T]) ElementParser {
	return ElementParserFunc(func(pc *ParseContext, family Parser, v any) (Element, error) {
		el, err := Deserialize(pc, family, v, populate)
		if err != nil || isNilElement(el) {
			return nil, err
		}
		return el, nil
	})
}

// Registry maps type strings of one element family to their parsers and
// implements Parser by dispatching on the "type" key. It is safe for
// concurrent use.
type Registry struct {
	name    string
	unknown UnknownPolicy

	mu      sync.RWMutex
	parsers map[string]ElementParser
}

// NewRegistry returns an empty registry. name labels the family in logs.
func NewRegistry(name string, unknown UnknownPolicy) *Registry {
	return &Registry{name: name, unknown: unknown, parsers: map[string]ElementParser{}}
}

// Name returns the family label.
func (r *Registry) Name() string { return r.name }

// UnknownPolicy returns how unregistered types are handled.
func (r *Registry) UnknownPolicy() UnknownPolicy { return r.unknown }

// Register adds or replaces the parser for typeString.
func (r *Registry) Register(typeString string, p ElementParser) {
	r.mu.Lock()
	r.parsers[typeString] = p
	r.mu.Unlock()
}

// Remove unregisters typeString.
func (r *Registry) Remove(typeString string) {
	r.mu.Lock()
	delete(r.parsers, typeString)
	r.mu.Unlock()
}

// Lookup returns the parser registered for typeString.
func (r *Registry) Lookup(typeString string) (ElementParser, bool) {
	r.mu.RLock()
	p, ok := r.parsers[typeString]
	r.mu.RUnlock()
	return p, ok
}

// Types returns the registered type strings, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.parsers))
	for t := range r.parsers {
		out = append(out, t)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// ParseJSONObject reads the "type" key of v and dispatches to the registered
// parser. Unregistered types follow the registry's UnknownPolicy. A parser
// result holding a nil pointer is returned as (nil, nil).
func (r *Registry) ParseJSONObject(pc *ParseContext, v any) (Element, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fail(pc.path.String(), CodeInvalidJSON, i18n.KeyNotObject)
	}
	typePath := pc.path.Field("type").String()
	raw, present := obj["type"]
	typ, isStr := raw.(string)
	switch {
	case present && raw != nil && !isStr:
		return nil, fail(typePath, CodeInvalidPropertyValue, i18n.KeyPropertyType, "key", "type", "expected", KindString.String())
	case typ == "":
		return nil, fail(typePath, CodeRequiredPropertyMissing, i18n.KeyPropertyRequired, "key", "type")
	}

	if p, ok := r.Lookup(typ); ok {
		el, err := p.Deserialize(pc, r, v)
		if err != nil || isNilElement(el) {
			return nil, err
		}
		return el, nil
	}
	switch r.unknown {
	case UnknownStrict:
		return nil, fail(typePath, CodeUnknownElementType, i18n.KeyUnknownType, "type", typ)
	case UnknownStrip:
		pc.Warn(newIssue(typePath, CodeUnknownElementType, i18n.KeyUnknownType, "type", typ))
		return nil, nil
	default:
		pc.logger.Debug("unknown element kept", "family", r.name, "type", typ)
		el, err := DeserializeUnknown(pc, r, v)
		if err != nil {
			return nil, err
		}
		return el, nil
	}
}

// ParseElements parses each entry of arr through family, extending the path
// with the entry index. Entries that produce no element are skipped.
func ParseElements(pc *ParseContext, family Parser, arr []any) ([]Element, error) {
	out := make([]Element, 0, len(arr))
	for i, v := range arr {
		var el Element
		err := pc.At(strconv.Itoa(i), func() error {
			var err error
			el, err = family.ParseJSONObject(pc, v)
			return err
		})
		if err != nil {
			return nil, err
		}
		if !isNilElement(el) {
			out = append(out, el)
		}
	}
	return out, nil
}

// UnknownElement preserves an element of a type no parser is registered for.
// Every key other than the base contract keys lands in its additional
// properties, so it serializes back unchanged. Hosts never render it.
type UnknownElement struct {
	BaseElement
}

// DeserializeUnknown parses v as an UnknownElement.
func DeserializeUnknown(pc *ParseContext, family Parser, v any) (*UnknownElement, error) {
	return Deserialize(pc, family, v, func(pc *ParseContext, _ Parser, props *Props) (*UnknownElement, error) {
		typ, _ := props.obj["type"].(string)
		return &UnknownElement{BaseElement: NewBaseElement(typ)}, nil
	})
}
