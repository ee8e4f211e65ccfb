package elements

import (
	"github.com/reoring/cardkit"
	js "github.com/reoring/cardkit/jsonschema"
)

// TypeTextBlock is the type string of TextBlock.
const TypeTextBlock = "TextBlock"

// TextBlock displays a run of text.
type TextBlock struct {
	cardkit.BaseElement

	Text                string
	Size                string
	Weight              string
	Color               string
	FontType            string
	HorizontalAlignment string
	IsSubtle            bool
	Wrap                bool
	MaxLines            uint
	Language            string
}

// NewTextBlock returns a TextBlock with default styling.
func NewTextBlock(text string) *TextBlock {
	return &TextBlock{
		BaseElement:         cardkit.NewBaseElement(TypeTextBlock),
		Text:                text,
		Size:                defaultEnum,
		Weight:              defaultEnum,
		Color:               defaultEnum,
		FontType:            defaultEnum,
		HorizontalAlignment: defaultAlignment,
	}
}

// DeserializeTextBlock parses v as a TextBlock; fallback content goes through
// family.
func DeserializeTextBlock(pc *cardkit.ParseContext, family cardkit.Parser, v any) (*TextBlock, error) {
	return cardkit.Deserialize(pc, family, v, populateTextBlock)
}

func populateTextBlock(pc *cardkit.ParseContext, _ cardkit.Parser, p *cardkit.Props) (*TextBlock, error) {
	tb := NewTextBlock("")
	var err error
	if tb.Text, err = p.String("text", ""); err != nil {
		return nil, err
	}
	if tb.Size, err = p.Enum(pc, "size", textSizes, defaultEnum); err != nil {
		return nil, err
	}
	if tb.Weight, err = p.Enum(pc, "weight", textWeights, defaultEnum); err != nil {
		return nil, err
	}
	if tb.Color, err = p.Enum(pc, "color", textColors, defaultEnum); err != nil {
		return nil, err
	}
	if tb.FontType, err = p.Enum(pc, "fontType", fontTypes, defaultEnum); err != nil {
		return nil, err
	}
	if tb.HorizontalAlignment, err = p.Enum(pc, "horizontalAlignment", alignments, defaultAlignment); err != nil {
		return nil, err
	}
	if tb.IsSubtle, err = p.Bool("isSubtle", false); err != nil {
		return nil, err
	}
	if tb.Wrap, err = p.Bool("wrap", false); err != nil {
		return nil, err
	}
	if tb.MaxLines, err = p.Uint("maxLines", 0); err != nil {
		return nil, err
	}
	if tb.Language, err = p.String("lang", ""); err != nil {
		return nil, err
	}
	return tb, nil
}

// SerializeToJSONValue adds the TextBlock keys to the base contract. Keys at
// their default value are omitted.
func (tb *TextBlock) SerializeToJSONValue() (map[string]any, error) {
	out, err := tb.BaseElement.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	setIf(out, "text", tb.Text, "")
	setIf(out, "size", tb.Size, defaultEnum)
	setIf(out, "weight", tb.Weight, defaultEnum)
	setIf(out, "color", tb.Color, defaultEnum)
	setIf(out, "fontType", tb.FontType, defaultEnum)
	setIf(out, "horizontalAlignment", tb.HorizontalAlignment, defaultAlignment)
	setIf(out, "isSubtle", tb.IsSubtle, false)
	setIf(out, "wrap", tb.Wrap, false)
	setIf(out, "maxLines", tb.MaxLines, 0)
	setIf(out, "lang", tb.Language, "")
	return out, nil
}

func textBlockSchema() *js.Schema {
	return js.Merge(cardkit.BaseJSONSchema(TypeTextBlock), js.Object(map[string]*js.Schema{
		"text":                js.String(),
		"size":                js.StringEnum(textSizes...),
		"weight":              js.StringEnum(textWeights...),
		"color":               js.StringEnum(textColors...),
		"fontType":            js.StringEnum(fontTypes...),
		"horizontalAlignment": js.StringEnum(alignments...),
		"isSubtle":            js.Bool(),
		"wrap":                js.Bool(),
		"maxLines":            js.Integer(),
		"lang":                js.String(),
	}))
}
