package cardkit_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
)

// ---- Helpers ----

func smallCardJSON() []byte {
	return []byte(`{"type":"AdaptiveCard","version":"1.5","body":[` +
		`{"type":"TextBlock","id":"title","text":"Hello","size":"Large","weight":"Bolder"},` +
		`{"type":"Image","url":"https://example.com/a.png","requires":{"images":"1.2"},"fallback":"drop"}],` +
		`"actions":[{"type":"Action.OpenUrl","title":"Open","url":"https://example.com"}]}`)
}

// generateCard returns a card with n containers, each holding a text block
// with a fallback chain of the given depth and an unknown element.
func generateCard(n, fallbackDepth int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * (160 + fallbackDepth*64))
	buf.WriteString(`{"type":"AdaptiveCard","version":"1.5","body":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"type":"Container","id":"c%d","items":[`, i)
		fmt.Fprintf(&buf, `{"type":"TextBlock","text":"t%d","requires":{"feature":"2.0"}`, i)
		for d := 0; d < fallbackDepth; d++ {
			fmt.Fprintf(&buf, `,"fallback":{"type":"TextBlock","text":"f%d"`, d)
		}
		for d := 0; d < fallbackDepth; d++ {
			buf.WriteByte('}')
		}
		fmt.Fprintf(&buf, `},{"type":"Rating","stars":%d}]}`, i%5)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

func parseCard(b *testing.B, f elements.Families, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Parse(ctx, cardkit.JSONBytes(data)); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}

// ---- Benchmarks ----

func BenchmarkParseCard_Small(b *testing.B) {
	parseCard(b, elements.NewFamilies(cardkit.UnknownPassthrough), smallCardJSON())
}

func BenchmarkParseCard_Large(b *testing.B) {
	parseCard(b, elements.NewFamilies(cardkit.UnknownPassthrough), generateCard(1000, 2))
}

func BenchmarkParseCard_DeepFallback(b *testing.B) {
	parseCard(b, elements.NewFamilies(cardkit.UnknownStrip), generateCard(100, 12))
}

func BenchmarkSerializeCard_Large(b *testing.B) {
	res, err := elements.NewFamilies(cardkit.UnknownPassthrough).Parse(context.Background(), cardkit.JSONBytes(generateCard(1000, 2)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := res.Value.Serialize(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	res, err := elements.NewFamilies(cardkit.UnknownPassthrough).Parse(context.Background(), cardkit.JSONBytes(generateCard(100, 12)))
	if err != nil {
		b.Fatal(err)
	}
	host := map[string]string{"feature": "1.0"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range res.Value.Body {
			for _, e := range c.(*elements.Container).Items {
				cardkit.Resolve(e, host)
			}
		}
	}
}
