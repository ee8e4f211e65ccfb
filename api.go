package cardkit

import (
	"context"
	"errors"

	"github.com/reoring/cardkit/i18n"
	eng "github.com/reoring/cardkit/internal/engine"
)

// ParseResult carries a parsed value with the warnings its parse produced.
type ParseResult[T any] struct {
	Value     T
	Warnings  Issues
	SessionID string
}

// ParseFunc parses a decoded document value within a ParseContext.
// Registry.ParseJSONObject satisfies ParseFunc[Element].
type ParseFunc[T any] func(pc *ParseContext, v any) (T, error)

// ParseFrom decodes one document from src and hands it to parse inside a
// fresh ParseContext. The logger attached to ctx with WithLogger traces the
// parse. On error the result's Value is the zero T; warnings gathered up to
// the failure are still returned.
func ParseFrom[T any](ctx context.Context, src Source, parse ParseFunc[T], opts ...ParseOpt) (ParseResult[T], error) {
	var res ParseResult[T]
	if err := ctx.Err(); err != nil {
		return res, err
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	logger := LoggerFromContext(ctx)
	pc := NewParseContext(WithContextLogger(logger), WithMaxFallbackDepth(opt.MaxFallbackDepth))
	res.SessionID = pc.SessionID()

	v, err := DecodeValue(src, opt, pc.Warn)
	if err != nil {
		res.Warnings = pc.Warnings()
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	val, err := parse(pc, v)
	res.Warnings = pc.Warnings()
	if err != nil {
		pc.Logger().Debug("parse failed", "err", err)
		return res, err
	}
	res.Value = val
	pc.Logger().Debug("parse done", "warnings", len(res.Warnings))
	return res, nil
}

// decodeIssues maps driver and enforcement failures onto Issues.
func decodeIssues(err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message, Cause: err}}
	}
	is := newIssue("/", CodeInvalidJSON, i18n.KeyDecode, "error", err.Error())
	is.Cause = err
	return Issues{is}
}
