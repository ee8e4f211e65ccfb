// Package middleware holds the framework-neutral pieces shared by the echo
// and gin adapters: request-context storage of parse results and the error
// payload shape.
package middleware

import (
	"context"

	"github.com/reoring/cardkit"
)

// ctxKeyParsed is a typed context key for storing ParseResult[T].
// Using a generic struct type ensures uniqueness per T.
type ctxKeyParsed[T any] struct{}

// ContextWithParsed attaches a ParseResult[T] to the context.
func ContextWithParsed[T any](ctx context.Context, res cardkit.ParseResult[T]) context.Context {
	return context.WithValue(ctx, ctxKeyParsed[T]{}, res)
}

// ParsedFromContext retrieves a ParseResult[T] from context.
func ParsedFromContext[T any](ctx context.Context) (cardkit.ParseResult[T], bool) {
	v, ok := ctx.Value(ctxKeyParsed[T]{}).(cardkit.ParseResult[T])
	return v, ok
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Nesting and fallback chains are bounded
func DefaultParseOpt() cardkit.ParseOpt {
	return cardkit.ParseOpt{
		Strictness:       cardkit.Strictness{OnDuplicateKey: cardkit.Error},
		MaxDepth:         64,
		MaxBytes:         1 << 20,
		MaxFallbackDepth: 16,
	}
}

// Resolve returns opt, or DefaultParseOpt when opt is the zero value.
func Resolve(opt cardkit.ParseOpt) cardkit.ParseOpt {
	if opt == (cardkit.ParseOpt{}) {
		return DefaultParseOpt()
	}
	return opt
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []cardkit.Issue) map[string]any {
	return map[string]any{"issues": issues}
}

// FailurePayload shapes any parse error: Issues keep their structure, other
// errors are reported as a message.
func FailurePayload(err error) map[string]any {
	if iss, ok := cardkit.AsIssues(err); ok {
		return ErrorPayload(iss)
	}
	return map[string]any{"error": err.Error()}
}
