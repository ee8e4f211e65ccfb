package gojson_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/source/gojson"
	jsonsrc "github.com/reoring/cardkit/source/json"
)

const doc = `{"type":"Container","id":"c","items":[{"type":"TextBlock","text":"a \"quoted\" é","maxLines":2},
	{"type":"Image","url":"https://example.com/x.png","fallback":"drop"}],"n":-12.5,"ok":false,"none":null}`

func TestGoJSON_MatchesEncodingJSON(t *testing.T) {
	got, err := cardkit.DecodeValue(gojson.NewBytes([]byte(doc)), cardkit.ParseOpt{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want, err := cardkit.DecodeValue(jsonsrc.NewBytes([]byte(doc)), cardkit.ParseOpt{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("go-json tree differs\n got: %#v\nwant: %#v", got, want)
	}
}

func TestGoJSON_Driver(t *testing.T) {
	d := gojson.Driver()
	if d.Name() != "go-json" {
		t.Fatalf("name = %s", d.Name())
	}
	if _, err := cardkit.DecodeValue(d.NewReader(strings.NewReader(`{"a":[1,2]}`)), cardkit.ParseOpt{}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := cardkit.DecodeValue(d.NewBytes([]byte(`{"a":`)), cardkit.ParseOpt{}, nil); !cardkit.HasCode(err, cardkit.CodeInvalidJSON) {
		t.Fatalf("truncated input: err = %v", err)
	}
}

func TestGoJSON_SetAsDefault(t *testing.T) {
	cardkit.SetJSONDriver(gojson.Driver())
	defer cardkit.UseDefaultJSONDriver()
	if cardkit.CurrentJSONDriver().Name() != "go-json" {
		t.Fatal("driver not switched")
	}
	cardkit.SetJSONDriver(nil)
	if cardkit.CurrentJSONDriver().Name() != "go-json" {
		t.Fatal("nil driver must be ignored")
	}
}

func TestGoJSON_DuplicateKeys(t *testing.T) {
	var warnings []cardkit.Issue
	opt := cardkit.ParseOpt{Strictness: cardkit.Strictness{OnDuplicateKey: cardkit.Warn}}
	_, err := cardkit.DecodeValue(gojson.NewBytes([]byte(`{"a":{"b":1,"b":2}}`)), opt, func(is cardkit.Issue) { warnings = append(warnings, is) })
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Path != "/a/b" {
		t.Fatalf("warnings = %v", warnings)
	}
}
