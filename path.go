package cardkit

import (
	"strconv"
	"strings"
)

// Pointer is a JSON Pointer held as unescaped reference tokens.
type Pointer []string

// Field returns a copy of p extended by an object member name.
func (p Pointer) Field(name string) Pointer {
	return append(append(Pointer{}, p...), name)
}

// Index returns a copy of p extended by an array index.
func (p Pointer) Index(i int) Pointer {
	return p.Field(strconv.Itoa(i))
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// String renders p per RFC 6901; the root renders as "/".
func (p Pointer) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := strings.Builder{}
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(tok))
	}
	return b.String()
}
