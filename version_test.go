package cardkit_test

import (
	"errors"
	"testing"

	"github.com/reoring/cardkit"
)

func TestParseSemanticVersion(t *testing.T) {
	valid := []string{"1", "1.2", "1.2.3", "v1.2.3", "V1.2", "1.2.3-beta.1", "1.2.3+build.5", " 1.0 "}
	for _, s := range valid {
		if _, err := cardkit.ParseSemanticVersion(s); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
	}
	invalid := []string{"", "x", "1.x", "1.2.3.4", "01.2", "1..2", "-1"}
	for _, s := range invalid {
		if _, err := cardkit.ParseSemanticVersion(s); !errors.Is(err, cardkit.ErrInvalidVersion) {
			t.Fatalf("%q: err = %v", s, err)
		}
	}
}

func TestSemanticVersion_Compare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.2", "1.2.0", 0},
		{"1.1", "1.2", -1},
		{"2", "1.9.9", 1},
		{"1.2.0-beta", "1.2.0", -1},
		{"1.2.0+a", "1.2.0+b", 0},
		{"v1.10", "1.9", 1},
	}
	for _, tc := range cases {
		a, b := cardkit.MustParseSemanticVersion(tc.a), cardkit.MustParseSemanticVersion(tc.b)
		if got := a.Compare(b); got != tc.want {
			t.Fatalf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSemanticVersion_Text(t *testing.T) {
	var v cardkit.SemanticVersion
	if !v.IsZero() {
		t.Fatal("zero value")
	}
	if err := v.UnmarshalText([]byte("1.5")); err != nil {
		t.Fatal(err)
	}
	b, _ := v.MarshalText()
	if string(b) != "1.5" || v.IsZero() {
		t.Fatalf("text = %s", b)
	}
	if err := v.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("invalid text must fail")
	}
}
