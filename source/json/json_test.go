package json_test

import (
	"testing"

	"github.com/reoring/cardkit"
	jsonsrc "github.com/reoring/cardkit/source/json"
)

func TestJSON_Offsets(t *testing.T) {
	s := jsonsrc.NewBytes([]byte(`{"a": "bc"}`))
	if s.Location() != -1 {
		t.Fatalf("location before reading = %d", s.Location())
	}
	var last int64
	for {
		tok, err := s.NextToken()
		if err != nil {
			break
		}
		if tok.Offset < last {
			t.Fatalf("offsets must not decrease: %d after %d", tok.Offset, last)
		}
		last = tok.Offset
	}
	if last != 11 {
		t.Fatalf("final offset = %d", last)
	}
}

func TestJSON_MaxBytes(t *testing.T) {
	big := []byte(`{"type":"TextBlock","text":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}`)
	_, err := cardkit.DecodeValue(jsonsrc.NewBytes(big), cardkit.ParseOpt{MaxBytes: 32}, nil)
	if !cardkit.HasCode(err, cardkit.CodeTruncated) {
		t.Fatalf("err = %v", err)
	}
	if _, err := cardkit.DecodeValue(jsonsrc.NewBytes(big), cardkit.ParseOpt{MaxBytes: 1024}, nil); err != nil {
		t.Fatalf("within limit: %v", err)
	}
}
