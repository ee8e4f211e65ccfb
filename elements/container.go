package elements

import (
	"github.com/reoring/cardkit"
	js "github.com/reoring/cardkit/jsonschema"
)

// TypeContainer is the type string of Container.
const TypeContainer = "Container"

// Container groups body elements.
type Container struct {
	cardkit.BaseElement

	Items []cardkit.Element
	Style string
}

// NewContainer returns a Container holding items.
func NewContainer(items ...cardkit.Element) *Container {
	return &Container{
		BaseElement: cardkit.NewBaseElement(TypeContainer),
		Items:       items,
		Style:       defaultEnum,
	}
}

// DeserializeContainer parses v as a Container; items are parsed through
// family.
func DeserializeContainer(pc *cardkit.ParseContext, family cardkit.Parser, v any) (*Container, error) {
	return cardkit.Deserialize(pc, family, v, populateContainer)
}

func populateContainer(pc *cardkit.ParseContext, family cardkit.Parser, p *cardkit.Props) (*Container, error) {
	c := NewContainer()
	var err error
	if c.Style, err = p.Enum(pc, "style", containerKind, defaultEnum); err != nil {
		return nil, err
	}
	arr, ok, err := p.Array("items")
	if err != nil || !ok {
		return c, err
	}
	err = pc.At("items", func() error {
		var err error
		c.Items, err = cardkit.ParseElements(pc, family, arr)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Children returns the items.
func (c *Container) Children() []cardkit.Element { return c.Items }

func (c *Container) SerializeToJSONValue() (map[string]any, error) {
	out, err := c.BaseElement.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	setIf(out, "style", c.Style, defaultEnum)
	items, err := serializeAll(c.Items)
	if err != nil {
		return nil, err
	}
	out["items"] = items
	return out, nil
}

// AppendResourceInformation reports the resources of every item.
func (c *Container) AppendResourceInformation(dst []cardkit.RemoteResourceInformation) []cardkit.RemoteResourceInformation {
	for _, it := range c.Items {
		dst = cardkit.AppendResources(dst, it)
	}
	return dst
}

func serializeAll(els []cardkit.Element) ([]any, error) {
	out := make([]any, 0, len(els))
	for _, e := range els {
		v, err := e.SerializeToJSONValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func containerSchema(item *js.Schema) *js.Schema {
	return js.Merge(cardkit.BaseJSONSchema(TypeContainer), js.Object(map[string]*js.Schema{
		"style": js.StringEnum(containerKind...),
		"items": {Type: "array", Items: item},
	}))
}
