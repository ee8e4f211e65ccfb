package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// Limits controls runtime enforcement applied while tokens stream through.
type Limits struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// Sink receives non-fatal issues (duplicate keys under DupWarn). Fatal
	// issues are only returned, as IssueError.
	Sink func(SimpleIssue)
}

// Disabled reports whether the limits would never reject or report anything.
func (l Limits) Disabled() bool {
	return l.OnDuplicate == DupIgnore && l.MaxDepth == 0 && l.MaxBytes == 0
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type guardFrame struct {
	kind         containerKind
	path         string
	keys         map[string]struct{}
	expectingKey bool
	pendingKey   string
	nextIndex    int
}

// Guard returns a TokenSource enforcing lim on top of inner. It returns inner
// unchanged when every limit is disabled.
func Guard(inner TokenSource, lim Limits) TokenSource {
	if lim.Disabled() {
		return inner
	}
	return &guardedSource{inner: inner, lim: lim}
}

type guardedSource struct {
	inner TokenSource
	lim   Limits
	stack []guardFrame
}

func (g *guardedSource) Location() int64 { return g.inner.Location() }

func (g *guardedSource) NextToken() (Token, error) {
	tok, err := g.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	path := g.pathFor(tok)

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := guardFrame{kind: kindArray, path: path}
		if tok.Kind == KindBeginObject {
			f = guardFrame{kind: kindObject, path: path, keys: map[string]struct{}{}, expectingKey: true}
		}
		g.stack = append(g.stack, f)
		if g.lim.MaxDepth > 0 && len(g.stack) > g.lim.MaxDepth {
			return Token{}, g.fail(SimpleIssue{Code: "parse_error", Path: pointerOrRoot(path), Message: "max depth exceeded"})
		}
	case KindEndObject, KindEndArray:
		if n := len(g.stack); n > 0 {
			g.stack = g.stack[:n-1]
		}
		g.valueDone()
	case KindKey:
		if top := g.top(); top != nil && top.kind == kindObject && top.expectingKey {
			if g.lim.OnDuplicate != DupIgnore {
				if _, seen := top.keys[tok.String]; seen {
					si := SimpleIssue{Code: "duplicate_key", Path: pointerOrRoot(path), Message: "key '" + tok.String + "' duplicated"}
					if g.lim.OnDuplicate == DupError {
						return Token{}, g.fail(si)
					}
					g.report(si)
				}
			}
			top.keys[tok.String] = struct{}{}
			top.expectingKey = false
			top.pendingKey = tok.String
		}
	default:
		g.valueDone()
	}

	if g.lim.MaxBytes > 0 {
		if off := g.Location(); off > g.lim.MaxBytes {
			return Token{}, g.fail(SimpleIssue{Code: "truncated", Path: pointerOrRoot(path), Message: "max bytes exceeded"})
		}
	}
	return tok, nil
}

func (g *guardedSource) top() *guardFrame {
	if n := len(g.stack); n > 0 {
		return &g.stack[n-1]
	}
	return nil
}

// valueDone flips the enclosing object back to expecting a key.
func (g *guardedSource) valueDone() {
	if top := g.top(); top != nil && top.kind == kindObject && !top.expectingKey {
		top.expectingKey = true
		top.pendingKey = ""
	}
}

// pathFor computes the JSON Pointer of the value or key tok belongs to.
func (g *guardedSource) pathFor(tok Token) string {
	top := g.top()
	if top == nil {
		if tok.Kind == KindKey {
			return JoinPointer("", tok.String)
		}
		return ""
	}
	switch tok.Kind {
	case KindKey:
		return JoinPointer(top.path, tok.String)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if top.kind == kindArray {
		p := JoinPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	if !top.expectingKey {
		return JoinPointer(top.path, top.pendingKey)
	}
	return top.path
}

func (g *guardedSource) report(si SimpleIssue) {
	if g.lim.Sink != nil {
		g.lim.Sink(si)
	}
}

func (g *guardedSource) fail(si SimpleIssue) error { return IssueError{si} }

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JoinPointer appends one RFC 6901 reference token to base.
func JoinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
