// Package elements provides the concrete card element types built on the
// cardkit base contract, the registries that dispatch on their type strings,
// and the top-level Card.
//
// Two families exist: body elements (TextBlock, Image, Container) and actions
// (Action.OpenUrl, Action.Submit). Fallback content is always parsed with the
// family of the element that declares it.
package elements
