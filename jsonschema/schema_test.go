package jsonschema_test

import (
	"encoding/json"
	"strings"
	"testing"

	js "github.com/reoring/cardkit/jsonschema"
)

func TestMerge_KeepsExistingProperties(t *testing.T) {
	dst := js.Object(map[string]*js.Schema{"type": {Const: "Image"}}, "type")
	js.Merge(dst, js.Object(map[string]*js.Schema{"type": js.String(), "url": js.String()}, "url"))

	if dst.Properties["type"].Const != "Image" {
		t.Fatalf("existing property overwritten: %+v", dst.Properties["type"])
	}
	if dst.Properties["url"] == nil {
		t.Fatal("url not merged")
	}
	if strings.Join(dst.Required, ",") != "type,url" {
		t.Fatalf("required = %v", dst.Required)
	}
	if js.Merge(dst, nil) != dst {
		t.Fatal("nil src must return dst")
	}
}

func TestDocument_RefsAndDraft(t *testing.T) {
	root := js.Object(map[string]*js.Schema{"items": {Type: "array", Items: js.Ref("element")}})
	root.Defs = map[string]*js.Schema{"element": {OneOf: []*js.Schema{js.StringEnum("a", "b")}}}

	doc := js.Document(root)
	if root.Schema != "" {
		t.Fatal("Document must not modify root")
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"$schema":"` + js.Draft + `"`, `"$ref":"#/$defs/element"`, `"enum":["a","b"]`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("missing %s in %s", want, b)
		}
	}
}
