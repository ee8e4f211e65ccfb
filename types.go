package cardkit

import "fmt"

// UnknownPolicy controls how a Registry handles element types it has no
// parser for.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Keep the element as an UnknownElement.
	UnknownStrip                            // Produce nothing and record a warning.
	UnknownStrict                           // Reject the element with an error.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrip:
		return "strip"
	case UnknownStrict:
		return "strict"
	default:
		return "passthrough"
	}
}

// ParseUnknownPolicy maps "passthrough", "strip" or "strict" to a policy.
// The empty string selects UnknownPassthrough.
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch s {
	case "", "passthrough":
		return UnknownPassthrough, nil
	case "strip":
		return UnknownStrip, nil
	case "strict":
		return UnknownStrict, nil
	}
	return 0, fmt.Errorf("cardkit: unknown type policy %q", s)
}

// Severity expresses the severity level for enforcement findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseSeverity maps "ignore", "warn" or "error" to a Severity. The empty
// string selects Ignore.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "", "ignore":
		return Ignore, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return 0, fmt.Errorf("cardkit: unknown severity %q", s)
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options for ParseFrom.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth caps JSON nesting depth; 0 disables the check.
	MaxDepth int
	// MaxBytes caps consumed input where the driver reports offsets; 0 disables.
	MaxBytes int64
	// MaxFallbackDepth caps nested fallback content; 0 disables the check.
	MaxFallbackDepth int
}
