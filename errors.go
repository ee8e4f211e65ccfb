package cardkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/cardkit/i18n"
)

// Issue codes.
const (
	CodeInvalidJSON             = "invalid_json"
	CodeInvalidPropertyValue    = "invalid_property_value"
	CodeRequiredPropertyMissing = "required_property_missing"
	CodeUnknownElementType      = "unknown_element_type"
	CodeDuplicateID             = "duplicate_id"
	CodeDuplicateKey            = "duplicate_key"
	CodeParseError              = "parse_error"
	CodeTruncated               = "truncated"
)

// Issue represents a single parse error or warning.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer (for example: /body/2/fallback).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message,omitempty"`
	Cause   error  `json:"-"` // Optional: underlying error.
	// Params carries structured parameters (e.g. {"capability":"feature1"})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

func (i Issue) String() string {
	if i.Message == "" {
		return fmt.Sprintf("%s at %s", i.Code, i.Path)
	}
	return fmt.Sprintf("%s at %s: %s", i.Code, i.Path, i.Message)
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through Issues.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// newIssue builds an Issue whose message comes from the i18n catalog. kv are
// alternating parameter names and values.
func newIssue(path, code, key string, kv ...string) Issue {
	var data map[string]string
	var params map[string]any
	if len(kv) > 1 {
		data = make(map[string]string, len(kv)/2)
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			data[kv[i]] = kv[i+1]
			params[kv[i]] = kv[i+1]
		}
	}
	return Issue{Path: path, Code: code, Message: i18n.T(key, data), Params: params}
}

// NewIssue builds an Issue for concrete element parsers. key selects the
// catalog message; kv are alternating parameter names and values.
func NewIssue(path, code, key string, kv ...string) Issue {
	return newIssue(path, code, key, kv...)
}

func fail(path, code, key string, kv ...string) Issues {
	return Issues{newIssue(path, code, key, kv...)}
}
