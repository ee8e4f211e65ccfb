// Package gojson provides a cardkit.JSONDriver backed by goccy/go-json.
package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/cardkit"
	eng "github.com/reoring/cardkit/internal/engine"
)

// Driver returns a cardkit.JSONDriver backed by goccy/go-json.
func Driver() cardkit.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) cardkit.Source { return NewReader(r) }
func (driverGoJSON) NewBytes(b []byte) cardkit.Source     { return NewBytes(b) }
func (driverGoJSON) Name() string                         { return "go-json" }

type source struct {
	dec  *j.Decoder
	keys eng.KeyTracker
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return eng.Token{Kind: s.keys.Open(true), Offset: -1}, nil
		case '[':
			return eng.Token{Kind: s.keys.Open(false), Offset: -1}, nil
		default:
			return eng.Token{Kind: s.keys.Close(), Offset: -1}, nil
		}
	case string:
		return eng.Token{Kind: s.keys.String(), String: v, Offset: -1}, nil
	case j.Number:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case bool:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	default:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	}
}

// go-json does not expose an input offset on its token API.
func (s *source) Location() int64 { return -1 }
