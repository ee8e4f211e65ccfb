// Package cardkit parses declarative UI-card elements from JSON into an
// object graph and serializes that graph back to JSON.
//
// The package provides:
//
// - The element base contract: identity, additional-properties passthrough,
// fallback resolution and requirement maps shared by every element type
// - A per-parse ParseContext tracking the fallback recursion stack
// - Registries dispatching nested content to concrete element parsers
// - A stable error model via Issues (JSON Pointer, code, message)
// - Pluggable JSON drivers with duplicate-key/depth/size enforcement
//
// Design policy:
// - Keep the base contract in the root package; concrete element types live
// under elements/ and plug in through Registry.
// - A failed parse never returns a partially populated element.
//
// Typical usage:
//
//	reg := cardkit.NewRegistry("element", cardkit.UnknownPassthrough)
//	reg.Register("TextBlock", cardkit.ElementParserFunc(parseTextBlock))
//	res, err := cardkit.ParseFrom(ctx, cardkit.JSONBytes(data), reg.ParseJSONObject)
//	out, err := cardkit.Serialize(res.Value)
package cardkit
