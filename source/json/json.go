// Package json provides the encoding/json-backed token source used as the
// fallback JSON driver.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	eng "github.com/reoring/cardkit/internal/engine"
)

type jsonSource struct {
	dec        *json.Decoder
	keys       eng.KeyTracker
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return eng.Token{Kind: s.keys.Open(true), Offset: s.lastOffset}, nil
		case '[':
			return eng.Token{Kind: s.keys.Open(false), Offset: s.lastOffset}, nil
		default:
			return eng.Token{Kind: s.keys.Close(), Offset: s.lastOffset}, nil
		}
	case string:
		return eng.Token{Kind: s.keys.String(), String: v, Offset: s.lastOffset}, nil
	case json.Number:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: s.lastOffset}, nil
	case bool:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.lastOffset}, nil
	default:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNull, Offset: s.lastOffset}, nil
	}
}

func (s *jsonSource) Location() int64 { return s.lastOffset }
