package elements

import (
	"github.com/reoring/cardkit"
	js "github.com/reoring/cardkit/jsonschema"
)

// TypeImage is the type string of Image.
const TypeImage = "Image"

// Image displays a remote image. Its url is reported as a resource.
type Image struct {
	cardkit.BaseElement

	URL     string
	AltText string
	Size    string
	Style   string
}

// NewImage returns an Image of url with default styling.
func NewImage(url string) *Image {
	return &Image{
		BaseElement: cardkit.NewBaseElement(TypeImage),
		URL:         url,
		Size:        defaultImageSize,
		Style:       defaultEnum,
	}
}

// DeserializeImage parses v as an Image. url is required.
func DeserializeImage(pc *cardkit.ParseContext, family cardkit.Parser, v any) (*Image, error) {
	return cardkit.Deserialize(pc, family, v, populateImage)
}

func populateImage(pc *cardkit.ParseContext, _ cardkit.Parser, p *cardkit.Props) (*Image, error) {
	url, err := p.RequiredString("url")
	if err != nil {
		return nil, err
	}
	img := NewImage(url)
	if img.AltText, err = p.String("altText", ""); err != nil {
		return nil, err
	}
	if img.Size, err = p.Enum(pc, "size", imageSizes, defaultImageSize); err != nil {
		return nil, err
	}
	if img.Style, err = p.Enum(pc, "style", imageStyles, defaultEnum); err != nil {
		return nil, err
	}
	return img, nil
}

func (img *Image) SerializeToJSONValue() (map[string]any, error) {
	out, err := img.BaseElement.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	out["url"] = img.URL
	setIf(out, "altText", img.AltText, "")
	setIf(out, "size", img.Size, defaultImageSize)
	setIf(out, "style", img.Style, defaultEnum)
	return out, nil
}

// AppendResourceInformation reports the image url.
func (img *Image) AppendResourceInformation(dst []cardkit.RemoteResourceInformation) []cardkit.RemoteResourceInformation {
	if img.URL == "" {
		return dst
	}
	return append(dst, cardkit.RemoteResourceInformation{URL: img.URL, MimeType: "image"})
}

func imageSchema() *js.Schema {
	return js.Merge(cardkit.BaseJSONSchema(TypeImage), js.Object(map[string]*js.Schema{
		"url":     {Type: "string", Format: "uri-reference"},
		"altText": js.String(),
		"size":    js.StringEnum(imageSizes...),
		"style":   js.StringEnum(imageStyles...),
	}, "url"))
}
