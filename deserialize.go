package cardkit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/reoring/cardkit/i18n"
)

// Parser parses content of one element family: given any JSON object it
// returns the element it describes. Returning (nil, nil) means the content
// produced no element.
type Parser interface {
	ParseJSONObject(pc *ParseContext, v any) (Element, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(pc *ParseContext, v any) (Element, error)

func (f ParserFunc) ParseJSONObject(pc *ParseContext, v any) (Element, error) { return f(pc, v) }

// PopulateFunc builds a concrete element from its own schema keys. family
// parses nested content of the same family (container children). Returning a
// nil element with a nil error means the content produced nothing; the base
// contract is then skipped.
type PopulateFunc[T Element] func(pc *ParseContext, family Parser, props *Props) (T, error)

// PropsOf wraps v in a Props, failing with invalid_json unless v is an object.
func PropsOf(pc *ParseContext, v any) (*Props, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fail(pc.path.String(), CodeInvalidJSON, i18n.KeyNotObject)
	}
	return NewProps(obj, pc.Path()), nil
}

// Deserialize is the generic entry point for one concrete element type: it
// checks that v is an object, lets populate build the element from its own
// keys, then applies the base contract. On failure, or when populate produces
// nothing, it returns the zero T.
func Deserialize[T Element](pc *ParseContext, family Parser, v any, populate PopulateFunc[T]) (T, error) {
	var zero T
	props, err := PropsOf(pc, v)
	if err != nil {
		return zero, err
	}
	el, err := populate(pc, family, props)
	if err != nil {
		return zero, err
	}
	if isNilElement(el) {
		return zero, nil
	}
	if err := DeserializeBase(pc, family, el, props); err != nil {
		return zero, err
	}
	return el, nil
}

// DeserializeBase applies the base contract to el: id, fallback, requires,
// then every key left unconsumed in props becomes an additional property.
// Fallback content is parsed through family.
func DeserializeBase(pc *ParseContext, family Parser, el Element, props *Props) error {
	if props == nil {
		return fail(pc.path.String(), CodeInvalidJSON, i18n.KeyNotObject)
	}
	id, err := props.String("id", "")
	if err != nil {
		return err
	}
	el.SetID(id)
	pc.noteID(el.ID(), el.InternalID())

	if err := parseFallback(pc, family, el, props); err != nil {
		return err
	}
	if err := parseRequires(el.Base(), props); err != nil {
		return err
	}
	props.Extract("type")
	el.SetAdditionalProperties(props.Remaining())
	return nil
}

func parseFallback(pc *ParseContext, family Parser, el Element, props *Props) error {
	v, ok := props.Extract("fallback")
	if !ok {
		return nil
	}
	path := props.At("fallback")
	switch fv := v.(type) {
	case string:
		if strings.ToLower(fv) == "drop" {
			el.Base().SetFallbackDrop()
			return nil
		}
		return fail(path, CodeInvalidPropertyValue, i18n.KeyFallbackDropOnly)
	case map[string]any:
		if len(fv) == 0 {
			return nil
		}
		if pc.maxFallbackDepth > 0 && pc.FallbackDepth() >= pc.maxFallbackDepth {
			return fail(path, CodeInvalidPropertyValue, i18n.KeyFallbackTooDeep, "max", strconv.Itoa(pc.maxFallbackDepth))
		}
		if family == nil {
			return fail(path, CodeInvalidPropertyValue, i18n.KeyFallbackUnparsed)
		}
		var content Element
		frame := ElementFrame{ID: el.ID(), InternalID: el.InternalID(), IsFallback: true}
		err := pc.withElement(frame, func() error {
			return pc.At("fallback", func() error {
				var err error
				content, err = family.ParseJSONObject(pc, fv)
				return err
			})
		})
		if err != nil {
			return err
		}
		if isNilElement(content) {
			return fail(path, CodeInvalidPropertyValue, i18n.KeyFallbackUnparsed)
		}
		el.Base().SetFallbackContent(content)
		return nil
	default:
		return fail(path, CodeInvalidPropertyValue, i18n.KeyFallbackInvalid)
	}
}

func parseRequires(b *BaseElement, props *Props) error {
	v, ok := props.Extract("requires")
	if !ok {
		return nil
	}
	path := props.Path().Field("requires")
	obj, isObj := v.(map[string]any)
	if !isObj {
		return fail(path.String(), CodeInvalidPropertyValue, i18n.KeyRequiresNotObject)
	}
	if len(obj) == 0 {
		return nil
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	reqs := make(map[string]SemanticVersion, len(obj))
	for _, name := range names {
		s, isStr := obj[name].(string)
		if !isStr {
			return fail(path.Field(name).String(), CodeInvalidPropertyValue, i18n.KeyRequiresBadVersion,
				"capability", name, "version", fmt.Sprint(obj[name]))
		}
		ver, err := ParseSemanticVersion(s)
		if err != nil {
			is := newIssue(path.Field(name).String(), CodeInvalidPropertyValue, i18n.KeyRequiresBadVersion,
				"capability", name, "version", strconv.Quote(s))
			is.Cause = err
			return Issues{is}
		}
		reqs[name] = ver
	}
	b.requires = reqs
	return nil
}
