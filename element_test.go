package cardkit_test

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/reoring/cardkit"
)

func TestInternalID_DistinctAcrossGoroutines(t *testing.T) {
	const workers, perWorker = 8, 500
	ids := make(chan cardkit.InternalID, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- newNote("").InternalID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[cardkit.InternalID]struct{}, workers*perWorker)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("internal id %d issued twice", id)
		}
		seen[id] = struct{}{}
	}
}

func TestBaseElement_Accessors(t *testing.T) {
	n := newNote("")
	if n.ElementTypeString() != "Note" || n.ID() != "" || n.FallbackType() != cardkit.FallbackNone {
		t.Fatalf("unexpected zero state: %q %q %v", n.ElementTypeString(), n.ID(), n.FallbackType())
	}
	before := n.InternalID()
	n.SetID("author")
	if n.ID() != "author" || n.InternalID() != before {
		t.Fatal("SetID must not touch the internal id")
	}

	fb := newNote("fb")
	n.SetFallbackContent(fb)
	if n.FallbackType() != cardkit.FallbackContent || n.FallbackContent() != cardkit.Element(fb) {
		t.Fatal("SetFallbackContent")
	}
	n.SetFallbackDrop()
	if n.FallbackType() != cardkit.FallbackDrop || n.FallbackContent() != nil {
		t.Fatal("SetFallbackDrop must clear content")
	}
	n.SetFallbackContent(nil)
	if n.FallbackType() != cardkit.FallbackNone {
		t.Fatal("SetFallbackContent(nil) must clear the fallback")
	}

	n.SetElementTypeString("Other")
	if n.ElementTypeString() != "Other" {
		t.Fatal("SetElementTypeString")
	}
}

func TestAdditionalProperties_Preserved(t *testing.T) {
	n, _, err := parseNote(t, `{"type":"Note","text":"hi","x-custom":{"k":[1,"two",null]},"speak":"hello"}`)
	if err != nil {
		t.Fatal(err)
	}
	ap := n.AdditionalProperties()
	if len(ap) != 2 {
		t.Fatalf("additional = %v", ap)
	}
	for _, k := range []string{"type", "text", "id", "fallback", "requires"} {
		if _, ok := ap[k]; ok {
			t.Fatalf("%s must not be an additional property", k)
		}
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	docs := []string{
		`{"type":"Note","text":"hi"}`,
		`{"type":"Note","id":"a","fallback":"drop"}`,
		`{"type":"Note","id":"b","requires":{"feature1":"1.2","feature2":"v2.0.0"},"fallback":{"type":"Note","text":"n/a","extra":true}}`,
		`{"type":"Note","x-custom":{"k":[1,2.5,"s",null,{"deep":false}]},"fallback":{"type":"Mystery","anything":[1]}}`,
	}
	family := newFamily(cardkit.UnknownPassthrough)
	for _, doc := range docs {
		pc := cardkit.NewParseContext()
		n, err := cardkit.Deserialize(pc, family, decode(t, doc), populateNote)
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		out, err := cardkit.Serialize(n)
		if err != nil {
			t.Fatalf("%s: serialize: %v", doc, err)
		}
		if got, want := decode(t, out), decode(t, doc); !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch\n got: %s\nwant: %s", out, doc)
		}
	}
}

func TestSerialize_DropKeyword(t *testing.T) {
	n, _, err := parseNote(t, `{"type":"Note","fallback":"DROP"}`)
	if err != nil {
		t.Fatal(err)
	}
	v, err := n.SerializeToJSONValue()
	if err != nil {
		t.Fatal(err)
	}
	if v["fallback"] != "drop" {
		t.Fatalf("fallback = %v", v["fallback"])
	}
}

func TestSerialize_AdditionalPropertiesAreCopied(t *testing.T) {
	n, _, err := parseNote(t, `{"type":"Note","x":{"k":1}}`)
	if err != nil {
		t.Fatal(err)
	}
	v, err := n.SerializeToJSONValue()
	if err != nil {
		t.Fatal(err)
	}
	v["x"].(map[string]any)["k"] = "changed"
	if _, isStr := n.AdditionalProperties()["x"].(map[string]any)["k"].(string); isStr {
		t.Fatal("serialized value shares maps with the element")
	}
}

// trimmedNote normalizes its id before storing it in the base.
type trimmedNote struct{ note }

func (n *trimmedNote) SetID(id string) { n.note.SetID(strings.TrimSpace(id)) }

func TestSerialize_EmitsIDStoredBySetID(t *testing.T) {
	populate := func(pc *cardkit.ParseContext, f cardkit.Parser, p *cardkit.Props) (*trimmedNote, error) {
		n, err := populateNote(pc, f, p)
		if err != nil {
			return nil, err
		}
		return &trimmedNote{note: *n}, nil
	}
	n, err := cardkit.Deserialize(cardkit.NewParseContext(), nil, decode(t, `{"type":"Note","id":"  a  "}`), populate)
	if err != nil {
		t.Fatal(err)
	}
	out, err := n.SerializeToJSONValue()
	if err != nil {
		t.Fatal(err)
	}
	if n.ID() != "a" || out["id"] != "a" {
		t.Fatalf("ID()=%q serialized id=%v", n.ID(), out["id"])
	}
}
