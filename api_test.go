package cardkit_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reoring/cardkit"
)

func parseElement(ctx context.Context, doc string, opts ...cardkit.ParseOpt) (cardkit.ParseResult[cardkit.Element], error) {
	family := newFamily(cardkit.UnknownPassthrough)
	return cardkit.ParseFrom(ctx, cardkit.JSONBytes([]byte(doc)), family.ParseJSONObject, opts...)
}

func TestParseFrom_Element(t *testing.T) {
	res, err := parseElement(context.Background(), `{"type":"Note","text":"hello"}`)
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := res.Value.(*note); !ok || n.Text != "hello" {
		t.Fatalf("value = %#v", res.Value)
	}
	if res.SessionID == "" {
		t.Fatal("session id missing")
	}
}

func TestParseFrom_InvalidJSON(t *testing.T) {
	for _, doc := range []string{`{"type":`, `{"type":"Note"} {}`, `nope`, ``} {
		_, err := parseElement(context.Background(), doc)
		if !cardkit.HasCode(err, cardkit.CodeInvalidJSON) {
			t.Fatalf("%q: err = %v", doc, err)
		}
	}
}

func TestParseFrom_DuplicateKeys(t *testing.T) {
	doc := `{"type":"Note","text":"a","text":"b"}`

	res, err := parseElement(context.Background(), doc)
	if err != nil || res.Value.(*note).Text != "b" {
		t.Fatalf("ignore: last value must win, got %v %v", res.Value, err)
	}

	res, err = parseElement(context.Background(), doc, cardkit.ParseOpt{Strictness: cardkit.Strictness{OnDuplicateKey: cardkit.Warn}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != cardkit.CodeDuplicateKey || res.Warnings[0].Path != "/text" {
		t.Fatalf("warnings = %v", res.Warnings)
	}

	_, err = parseElement(context.Background(), doc, cardkit.ParseOpt{Strictness: cardkit.Strictness{OnDuplicateKey: cardkit.Error}})
	if !cardkit.HasCode(err, cardkit.CodeDuplicateKey) {
		t.Fatalf("error: err = %v", err)
	}
}

func TestParseFrom_Limits(t *testing.T) {
	deep := `{"type":"Note","x":[[[[[1]]]]]}`
	if _, err := parseElement(context.Background(), deep, cardkit.ParseOpt{MaxDepth: 3}); !cardkit.HasCode(err, cardkit.CodeParseError) {
		t.Fatalf("max depth: err = %v", err)
	}
	if _, err := parseElement(context.Background(), deep, cardkit.ParseOpt{MaxDepth: 10}); err != nil {
		t.Fatalf("within depth: %v", err)
	}

	chain := `{"type":"Note","fallback":{"type":"Note","fallback":{"type":"Note"}}}`
	if _, err := parseElement(context.Background(), chain, cardkit.ParseOpt{MaxFallbackDepth: 1}); !cardkit.HasCode(err, cardkit.CodeInvalidPropertyValue) {
		t.Fatalf("max fallback depth: err = %v", err)
	}
}

func TestParseFrom_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := parseElement(ctx, `{"type":"Note"}`); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseFrom_ZeroValueOnFailure(t *testing.T) {
	res, err := parseElement(context.Background(), `{"type":"Note","id":"a","fallback":{"type":"Note","id":"b","fallback":{"type":"Link"}}}`)
	if err == nil {
		t.Fatal("expected failure")
	}
	if res.Value != nil {
		t.Fatalf("value on failure = %v", res.Value)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := cardkit.Issues{
		{Path: "/a", Code: cardkit.CodeInvalidPropertyValue, Message: "m1"},
		{Path: "/b", Code: cardkit.CodeRequiredPropertyMissing},
		{Path: "/c", Code: cardkit.CodeDuplicateID},
		{Path: "/d", Code: cardkit.CodeDuplicateKey},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "invalid_property_value at /a: m1") || !strings.Contains(msg, "(total 4)") {
		t.Fatalf("summary = %q", msg)
	}
	if strings.Contains(msg, "/d") {
		t.Fatalf("summary shows too many issues: %q", msg)
	}
	if cardkit.Issues(nil).Error() != "" {
		t.Fatal("empty issues")
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	base := cardkit.Issues{{Path: "/", Code: cardkit.CodeInvalidJSON}}
	wrapped := errors.Join(errors.New("context"), base)
	iss, ok := cardkit.AsIssues(wrapped)
	if !ok || len(iss) != 1 {
		t.Fatalf("AsIssues = %v %v", iss, ok)
	}
	if _, ok := cardkit.AsIssues(errors.New("plain")); ok {
		t.Fatal("plain errors are not Issues")
	}
	if got := cardkit.AppendIssues(nil, base...); len(got) != 1 {
		t.Fatalf("AppendIssues = %v", got)
	}
}
