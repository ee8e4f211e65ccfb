package elements

import (
	"github.com/reoring/cardkit"
	js "github.com/reoring/cardkit/jsonschema"
)

// Action type strings.
const (
	TypeOpenURL = "Action.OpenUrl"
	TypeSubmit  = "Action.Submit"
)

// OpenURLAction opens a url when invoked.
type OpenURLAction struct {
	cardkit.BaseElement

	Title   string
	URL     string
	IconURL string
}

// NewOpenURLAction returns an Action.OpenUrl for url.
func NewOpenURLAction(title, url string) *OpenURLAction {
	return &OpenURLAction{BaseElement: cardkit.NewBaseElement(TypeOpenURL), Title: title, URL: url}
}

// DeserializeOpenURL parses v as an Action.OpenUrl. url is required.
func DeserializeOpenURL(pc *cardkit.ParseContext, family cardkit.Parser, v any) (*OpenURLAction, error) {
	return cardkit.Deserialize(pc, family, v, populateOpenURL)
}

func populateOpenURL(_ *cardkit.ParseContext, _ cardkit.Parser, p *cardkit.Props) (*OpenURLAction, error) {
	url, err := p.RequiredString("url")
	if err != nil {
		return nil, err
	}
	a := NewOpenURLAction("", url)
	if a.Title, err = p.String("title", ""); err != nil {
		return nil, err
	}
	if a.IconURL, err = p.String("iconUrl", ""); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *OpenURLAction) SerializeToJSONValue() (map[string]any, error) {
	out, err := a.BaseElement.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	out["url"] = a.URL
	setIf(out, "title", a.Title, "")
	setIf(out, "iconUrl", a.IconURL, "")
	return out, nil
}

func (a *OpenURLAction) AppendResourceInformation(dst []cardkit.RemoteResourceInformation) []cardkit.RemoteResourceInformation {
	return appendIcon(dst, a.IconURL)
}

// SubmitAction gathers input and sends it with Data to the host.
type SubmitAction struct {
	cardkit.BaseElement

	Title   string
	IconURL string
	// Data is sent along with the gathered input; any JSON value.
	Data any
}

// NewSubmitAction returns an Action.Submit.
func NewSubmitAction(title string) *SubmitAction {
	return &SubmitAction{BaseElement: cardkit.NewBaseElement(TypeSubmit), Title: title}
}

// DeserializeSubmit parses v as an Action.Submit.
func DeserializeSubmit(pc *cardkit.ParseContext, family cardkit.Parser, v any) (*SubmitAction, error) {
	return cardkit.Deserialize(pc, family, v, populateSubmit)
}

func populateSubmit(_ *cardkit.ParseContext, _ cardkit.Parser, p *cardkit.Props) (*SubmitAction, error) {
	a := NewSubmitAction("")
	var err error
	if a.Title, err = p.String("title", ""); err != nil {
		return nil, err
	}
	if a.IconURL, err = p.String("iconUrl", ""); err != nil {
		return nil, err
	}
	if d, ok := p.Extract("data"); ok {
		a.Data = cardkit.CloneValue(d)
	}
	return a, nil
}

func (a *SubmitAction) SerializeToJSONValue() (map[string]any, error) {
	out, err := a.BaseElement.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	setIf(out, "title", a.Title, "")
	setIf(out, "iconUrl", a.IconURL, "")
	if a.Data != nil {
		out["data"] = cardkit.CloneValue(a.Data)
	}
	return out, nil
}

func (a *SubmitAction) AppendResourceInformation(dst []cardkit.RemoteResourceInformation) []cardkit.RemoteResourceInformation {
	return appendIcon(dst, a.IconURL)
}

func appendIcon(dst []cardkit.RemoteResourceInformation, url string) []cardkit.RemoteResourceInformation {
	if url == "" {
		return dst
	}
	return append(dst, cardkit.RemoteResourceInformation{URL: url, MimeType: "image"})
}

func openURLSchema() *js.Schema {
	return js.Merge(cardkit.BaseJSONSchema(TypeOpenURL), js.Object(map[string]*js.Schema{
		"url":     {Type: "string", Format: "uri-reference"},
		"title":   js.String(),
		"iconUrl": {Type: "string", Format: "uri-reference"},
	}, "url"))
}

func submitSchema() *js.Schema {
	return js.Merge(cardkit.BaseJSONSchema(TypeSubmit), js.Object(map[string]*js.Schema{
		"title":   js.String(),
		"iconUrl": {Type: "string", Format: "uri-reference"},
		"data":    {Description: "any JSON value"},
	}))
}
