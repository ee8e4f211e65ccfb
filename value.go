package cardkit

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/cardkit/i18n"
)

// ValueKind discriminates decoded JSON values.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
	KindInvalid
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "a string"
	case KindNumber:
		return "a number"
	case KindBool:
		return "a boolean"
	case KindArray:
		return "an array"
	case KindObject:
		return "an object"
	default:
		return "invalid"
	}
}

// KindOf reports the JSON kind of a decoded value.
func KindOf(v any) ValueKind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case bool:
		return KindBool
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// Props is a consuming view over a JSON object. Every extraction marks its key
// as consumed; Remaining returns what nobody asked for, which becomes the
// element's additional properties.
type Props struct {
	obj  map[string]any
	used map[string]struct{}
	path Pointer
}

// NewProps wraps obj; path locates obj in the document for issue reporting.
func NewProps(obj map[string]any, path Pointer) *Props {
	return &Props{obj: obj, used: map[string]struct{}{}, path: path}
}

// Path returns the JSON Pointer of the wrapped object.
func (p *Props) Path() Pointer { return p.path }

// At returns the JSON Pointer of key inside the wrapped object.
func (p *Props) At(key string) string { return p.path.Field(key).String() }

// Has reports whether key is present, consumed or not.
func (p *Props) Has(key string) bool {
	_, ok := p.obj[key]
	return ok
}

// Extract consumes key. Absent and null values both report false.
func (p *Props) Extract(key string) (any, bool) {
	v, ok := p.obj[key]
	p.used[key] = struct{}{}
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (p *Props) typeError(key string, want ValueKind) Issues {
	return fail(p.At(key), CodeInvalidPropertyValue, i18n.KeyPropertyType, "key", key, "expected", want.String())
}

// String consumes key as a string, returning def when absent.
func (p *Props) String(key, def string) (string, error) {
	v, ok := p.Extract(key)
	if !ok {
		return def, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", p.typeError(key, KindString)
	}
	return s, nil
}

// RequiredString consumes key as a non-empty string.
func (p *Props) RequiredString(key string) (string, error) {
	s, err := p.String(key, "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fail(p.At(key), CodeRequiredPropertyMissing, i18n.KeyPropertyRequired, "key", key)
	}
	return s, nil
}

// Bool consumes key as a boolean, returning def when absent.
func (p *Props) Bool(key string, def bool) (bool, error) {
	v, ok := p.Extract(key)
	if !ok {
		return def, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, p.typeError(key, KindBool)
	}
	return b, nil
}

// Uint consumes key as a non-negative integer, returning def when absent.
func (p *Props) Uint(key string, def uint) (uint, error) {
	v, ok := p.Extract(key)
	if !ok {
		return def, nil
	}
	n, isUint := asUint(v)
	if !isUint {
		return 0, fail(p.At(key), CodeInvalidPropertyValue, i18n.KeyPropertyType, "key", key, "expected", "a non-negative integer")
	}
	return uint(n), nil
}

// Object consumes key as an object. ok is false when the key is absent.
func (p *Props) Object(key string) (obj map[string]any, ok bool, err error) {
	v, present := p.Extract(key)
	if !present {
		return nil, false, nil
	}
	m, isObj := v.(map[string]any)
	if !isObj {
		return nil, false, p.typeError(key, KindObject)
	}
	return m, true, nil
}

// Array consumes key as an array. ok is false when the key is absent.
func (p *Props) Array(key string) (arr []any, ok bool, err error) {
	v, present := p.Extract(key)
	if !present {
		return nil, false, nil
	}
	a, isArr := v.([]any)
	if !isArr {
		return nil, false, p.typeError(key, KindArray)
	}
	return a, true, nil
}

// Version consumes key as a semantic version string. ok is false when the
// key is absent.
func (p *Props) Version(key string) (v SemanticVersion, ok bool, err error) {
	s, err := p.String(key, "")
	if err != nil || s == "" {
		return SemanticVersion{}, false, err
	}
	v, err = ParseSemanticVersion(s)
	if err != nil {
		is := newIssue(p.At(key), CodeInvalidPropertyValue, i18n.KeyPropertyType, "key", key, "expected", "a semantic version")
		is.Cause = err
		return SemanticVersion{}, false, Issues{is}
	}
	return v, true, nil
}

// Enum consumes key as one of allowed, matched case-insensitively and
// returned in its allowed spelling. Out-of-domain values are reported to pc
// as a warning and def is used instead.
func (p *Props) Enum(pc *ParseContext, key string, allowed []string, def string) (string, error) {
	s, err := p.String(key, "")
	if err != nil || s == "" {
		return def, err
	}
	for _, a := range allowed {
		if strings.EqualFold(a, s) {
			return a, nil
		}
	}
	pc.Warn(newIssue(p.At(key), CodeInvalidPropertyValue, i18n.KeyPropertyEnum, "key", key, "value", s))
	return def, nil
}

// Remaining returns a copy of every key not consumed so far, or nil.
func (p *Props) Remaining() map[string]any {
	var out map[string]any
	for k, v := range p.obj {
		if _, used := p.used[k]; used {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies a decoded JSON value so the copy shares no maps or
// slices with v.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = CloneValue(e)
		}
		return m
	case []any:
		a := make([]any, len(t))
		for i, e := range t {
			a[i] = CloneValue(e)
		}
		return a
	default:
		return v
	}
}

func asUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(string(n), 10, 64)
		return u, err == nil
	case float64:
		if n < 0 || n != math.Trunc(n) || n > math.MaxUint32 {
			return 0, false
		}
		return uint64(n), true
	case int:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case uint:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}
