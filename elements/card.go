package elements

import (
	"context"
	"strings"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/i18n"
)

// TypeCard is the type string of the top-level card.
const TypeCard = "AdaptiveCard"

// Card is the root of a card document.
type Card struct {
	Version      cardkit.SemanticVersion
	FallbackText string
	Speak        string
	Body         []cardkit.Element
	Actions      []cardkit.Element
	// AdditionalProperties keeps unrecognized top-level keys.
	AdditionalProperties map[string]any
}

// ParseCard reads a card from src with the built-in families, keeping
// elements of unknown type.
func ParseCard(ctx context.Context, src cardkit.Source, opts ...cardkit.ParseOpt) (cardkit.ParseResult[*Card], error) {
	return NewFamilies(cardkit.UnknownPassthrough).Parse(ctx, src, opts...)
}

// Parse reads a card from src using f.
func (f Families) Parse(ctx context.Context, src cardkit.Source, opts ...cardkit.ParseOpt) (cardkit.ParseResult[*Card], error) {
	return cardkit.ParseFrom(ctx, src, f.ParseCard, opts...)
}

// ParseCard builds a Card from the decoded document v. Body entries go
// through f.Elements, actions through f.Actions.
func (f Families) ParseCard(pc *cardkit.ParseContext, v any) (*Card, error) {
	p, err := cardkit.PropsOf(pc, v)
	if err != nil {
		return nil, err
	}
	typ, err := p.RequiredString("type")
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(typ, TypeCard) {
		return nil, cardkit.Issues{cardkit.NewIssue(p.At("type"), cardkit.CodeInvalidPropertyValue, i18n.KeyCardType, "type", typ)}
	}

	c := &Card{}
	if c.Version, _, err = p.Version("version"); err != nil {
		return nil, err
	}
	if c.FallbackText, err = p.String("fallbackText", ""); err != nil {
		return nil, err
	}
	if c.Speak, err = p.String("speak", ""); err != nil {
		return nil, err
	}
	if c.Body, err = parseList(pc, p, "body", f.Elements); err != nil {
		return nil, err
	}
	if c.Actions, err = parseList(pc, p, "actions", f.Actions); err != nil {
		return nil, err
	}
	p.Extract("$schema")
	c.AdditionalProperties = p.Remaining()
	pc.Logger().Debug("card parsed", "body", len(c.Body), "actions", len(c.Actions))
	return c, nil
}

func parseList(pc *cardkit.ParseContext, p *cardkit.Props, key string, family cardkit.Parser) ([]cardkit.Element, error) {
	arr, ok, err := p.Array(key)
	if err != nil || !ok {
		return nil, err
	}
	var out []cardkit.Element
	err = pc.At(key, func() error {
		var err error
		out, err = cardkit.ParseElements(pc, family, arr)
		return err
	})
	return out, err
}

// SerializeToJSONValue renders the card as a JSON object.
func (c *Card) SerializeToJSONValue() (map[string]any, error) {
	out := make(map[string]any, len(c.AdditionalProperties)+6)
	for k, v := range c.AdditionalProperties {
		out[k] = cardkit.CloneValue(v)
	}
	out["type"] = TypeCard
	if !c.Version.IsZero() {
		out["version"] = c.Version.String()
	}
	setIf(out, "fallbackText", c.FallbackText, "")
	setIf(out, "speak", c.Speak, "")
	body, err := serializeAll(c.Body)
	if err != nil {
		return nil, err
	}
	out["body"] = body
	if len(c.Actions) > 0 {
		actions, err := serializeAll(c.Actions)
		if err != nil {
			return nil, err
		}
		out["actions"] = actions
	}
	return out, nil
}

// Serialize renders the card as compact JSON.
func (c *Card) Serialize() (string, error) {
	v, err := c.SerializeToJSONValue()
	if err != nil {
		return "", err
	}
	b, err := cardkit.MarshalValue(v, "")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ResourceInformation lists every remote resource of the card, fallback
// content included, in document order.
func (c *Card) ResourceInformation() []cardkit.RemoteResourceInformation {
	var out []cardkit.RemoteResourceInformation
	for _, e := range c.Body {
		out = cardkit.AppendResources(out, e)
	}
	for _, e := range c.Actions {
		out = cardkit.AppendResources(out, e)
	}
	return out
}
