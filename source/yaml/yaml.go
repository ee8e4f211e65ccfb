// Package yaml lets cards be authored in YAML. The document is decoded with
// gopkg.in/yaml.v3 and replayed as the same token stream a JSON driver would
// produce, so parsing, enforcement and error paths are shared.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/cardkit/internal/engine"
)

// ErrUnsupportedNode is returned for YAML constructs without a JSON
// equivalent (non-scalar mapping keys, non-finite floats).
var ErrUnsupportedNode = errors.New("yaml: node has no JSON equivalent")

// NewBytes decodes the first YAML document in b and returns it as a token
// source. Decoding errors surface on the first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	return NewReader(bytes.NewReader(b))
}

// NewReader decodes the first YAML document read from r.
func NewReader(r io.Reader) eng.TokenSource {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &replay{err: io.ErrUnexpectedEOF}
		}
		return &replay{err: fmt.Errorf("yaml: %w", err)}
	}
	rp := &replay{}
	if err := rp.emit(&doc); err != nil {
		return &replay{err: err}
	}
	return rp
}

type replay struct {
	tokens []eng.Token
	idx    int
	err    error
}

func (r *replay) NextToken() (eng.Token, error) {
	if r.err != nil {
		return eng.Token{}, r.err
	}
	if r.idx >= len(r.tokens) {
		return eng.Token{}, io.EOF
	}
	t := r.tokens[r.idx]
	r.idx++
	return t, nil
}

func (r *replay) Location() int64 { return -1 }

func (r *replay) push(t eng.Token) {
	t.Offset = -1
	r.tokens = append(r.tokens, t)
}

func (r *replay) emit(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return io.ErrUnexpectedEOF
		}
		return r.emit(n.Content[0])
	case yaml.AliasNode:
		return r.emit(n.Alias)
	case yaml.MappingNode:
		r.push(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: mapping key at line %d", ErrUnsupportedNode, k.Line)
			}
			r.push(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := r.emit(n.Content[i+1]); err != nil {
				return err
			}
		}
		r.push(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		r.push(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := r.emit(c); err != nil {
				return err
			}
		}
		r.push(eng.Token{Kind: eng.KindEndArray})
		return nil
	default:
		return r.emitScalar(n)
	}
}

func (r *replay) emitScalar(n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		r.push(eng.Token{Kind: eng.KindNull})
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		r.push(eng.Token{Kind: eng.KindBool, Bool: b})
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return err
		}
		r.push(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)})
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: %q at line %d", ErrUnsupportedNode, n.Value, n.Line)
		}
		r.push(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)})
	default:
		r.push(eng.Token{Kind: eng.KindString, String: n.Value})
	}
	return nil
}
