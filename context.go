package cardkit

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/reoring/cardkit/i18n"
)

// ElementFrame is one entry of the ParseContext stack.
type ElementFrame struct {
	ID         string
	InternalID InternalID
	IsFallback bool
}

// ParseContext is the state of one top-level parse: the stack of elements
// whose fallback content is being parsed, the current document path, warnings
// and the ids seen so far. It must not be shared across concurrent parses.
type ParseContext struct {
	frames           []ElementFrame
	path             Pointer
	warnings         Issues
	ids              map[string]InternalID
	maxFallbackDepth int
	logger           *log.Logger
	session          string
}

// ContextOption configures a ParseContext.
type ContextOption func(*ParseContext)

// WithContextLogger routes debug tracing of the parse to l.
func WithContextLogger(l *log.Logger) ContextOption {
	return func(pc *ParseContext) {
		if l != nil {
			pc.logger = l
		}
	}
}

// WithMaxFallbackDepth limits how many fallback levels may nest; 0 means no
// limit.
func WithMaxFallbackDepth(n int) ContextOption {
	return func(pc *ParseContext) { pc.maxFallbackDepth = n }
}

// NewParseContext returns an empty context for one top-level parse.
func NewParseContext(opts ...ContextOption) *ParseContext {
	pc := &ParseContext{
		ids:     map[string]InternalID{},
		logger:  discardLogger,
		session: uuid.NewString(),
	}
	for _, o := range opts {
		o(pc)
	}
	pc.logger = pc.logger.With("session", pc.session)
	return pc
}

// SessionID identifies this parse in logs.
func (pc *ParseContext) SessionID() string { return pc.session }

// Logger returns the logger tracing this parse.
func (pc *ParseContext) Logger() *log.Logger { return pc.logger }

// PushElement records that fallback content of the element described by f is
// about to be parsed. Every push must be matched by PopElement.
func (pc *ParseContext) PushElement(f ElementFrame) {
	pc.frames = append(pc.frames, f)
	pc.logger.Debug("push element", "id", f.ID, "internalId", f.InternalID, "fallback", f.IsFallback, "depth", len(pc.frames))
}

// PopElement removes the most recently pushed frame. Popping an empty stack
// is a programming error and panics.
func (pc *ParseContext) PopElement() {
	n := len(pc.frames)
	if n == 0 {
		panic("cardkit: PopElement on empty parse context")
	}
	f := pc.frames[n-1]
	pc.frames = pc.frames[:n-1]
	pc.logger.Debug("pop element", "id", f.ID, "internalId", f.InternalID, "depth", n-1)
}

// withElement runs fn between PushElement(f) and PopElement. The pop is
// deferred so it also runs when fn fails or panics.
func (pc *ParseContext) withElement(f ElementFrame, fn func() error) error {
	pc.PushElement(f)
	defer pc.PopElement()
	return fn()
}

// Depth returns the number of frames on the stack.
func (pc *ParseContext) Depth() int { return len(pc.frames) }

// Frames returns a copy of the stack, outermost first.
func (pc *ParseContext) Frames() []ElementFrame {
	return append([]ElementFrame(nil), pc.frames...)
}

// FallbackDepth counts the fallback frames on the stack.
func (pc *ParseContext) FallbackDepth() int {
	n := 0
	for _, f := range pc.frames {
		if f.IsFallback {
			n++
		}
	}
	return n
}

// Path returns the JSON Pointer of the value being parsed.
func (pc *ParseContext) Path() Pointer { return append(Pointer(nil), pc.path...) }

// At runs fn with name appended to the current path.
func (pc *ParseContext) At(name string, fn func() error) error {
	pc.path = append(pc.path, name)
	defer func() { pc.path = pc.path[:len(pc.path)-1] }()
	return fn()
}

// Warn records a non-fatal issue.
func (pc *ParseContext) Warn(is Issue) {
	pc.warnings = append(pc.warnings, is)
	pc.logger.Debug("warning", "code", is.Code, "path", is.Path, "msg", is.Message)
}

// Warnings returns the issues recorded so far.
func (pc *ParseContext) Warnings() Issues { return append(Issues(nil), pc.warnings...) }

// noteID records an author id. Reusing an id is reported unless the element
// is fallback content of an element with that same id.
func (pc *ParseContext) noteID(id string, iid InternalID) {
	if id == "" {
		return
	}
	if _, seen := pc.ids[id]; !seen {
		pc.ids[id] = iid
		return
	}
	for _, f := range pc.frames {
		if f.IsFallback && f.ID == id {
			return
		}
	}
	pc.Warn(newIssue(pc.path.Field("id").String(), CodeDuplicateID, i18n.KeyDuplicateID, "id", id))
}

var discardLogger = log.New(io.Discard)

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a child context carrying l for ParseFrom and the HTTP
// middleware.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext returns the logger stored by WithLogger, or a logger that
// discards everything.
func LoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	return discardLogger
}
