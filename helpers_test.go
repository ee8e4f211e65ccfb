package cardkit_test

import (
	"testing"

	"github.com/reoring/cardkit"
)

// note is a minimal concrete element used to exercise the base contract.
type note struct {
	cardkit.BaseElement
	Text string
}

func newNote(text string) *note {
	return &note{BaseElement: cardkit.NewBaseElement("Note"), Text: text}
}

func populateNote(_ *cardkit.ParseContext, _ cardkit.Parser, p *cardkit.Props) (*note, error) {
	n := newNote("")
	var err error
	n.Text, err = p.String("text", "")
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (n *note) SerializeToJSONValue() (map[string]any, error) {
	out, err := n.BaseElement.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	if n.Text != "" {
		out["text"] = n.Text
	}
	return out, nil
}

// link is a note that also references a remote resource.
type link struct {
	note
	URL string
}

func populateLink(pc *cardkit.ParseContext, family cardkit.Parser, p *cardkit.Props) (*link, error) {
	url, err := p.RequiredString("url")
	if err != nil {
		return nil, err
	}
	return &link{note: note{BaseElement: cardkit.NewBaseElement("Link")}, URL: url}, nil
}

func (l *link) SerializeToJSONValue() (map[string]any, error) {
	out, err := l.note.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	out["url"] = l.URL
	return out, nil
}

func (l *link) AppendResourceInformation(dst []cardkit.RemoteResourceInformation) []cardkit.RemoteResourceInformation {
	return append(dst, cardkit.RemoteResourceInformation{URL: l.URL, MimeType: "text/html"})
}

func newFamily(policy cardkit.UnknownPolicy) *cardkit.Registry {
	r := cardkit.NewRegistry("test", policy)
	r.Register("Note", cardkit.ParserOf(populateNote))
	r.Register("Link", cardkit.ParserOf(populateLink))
	return r
}

// decode turns a JSON literal into the value tree parsers consume.
func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := cardkit.DecodeValue(cardkit.JSONBytes([]byte(s)), cardkit.ParseOpt{}, nil)
	if err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return v
}

// parseNote parses s as a Note with a fresh context and the test family.
func parseNote(t *testing.T, s string) (*note, *cardkit.ParseContext, error) {
	t.Helper()
	pc := cardkit.NewParseContext()
	n, err := cardkit.Deserialize(pc, newFamily(cardkit.UnknownPassthrough), decode(t, s), populateNote)
	return n, pc, err
}

func firstIssue(t *testing.T, err error) cardkit.Issue {
	t.Helper()
	iss, ok := cardkit.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0]
}
