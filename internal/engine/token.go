// Package engine holds the token model shared by every input driver, the
// builder that turns a token stream into a decoded value tree, and the
// enforcement wrapper applied between the two.
package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "{"
	case KindEndObject:
		return "}"
	case KindBeginArray:
		return "["
	case KindEndArray:
		return "]"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Token is one lexical unit of a card document. Offset is the approximate byte
// position after the token, or -1 when the driver cannot tell.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface a driver implements.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// SimpleIssue is a minimal issue representation used inside the engine. The
// root package lifts it into its public Issue type.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }
