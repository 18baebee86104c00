package parser

import (
	"fmt"

	"github.com/nezdolik/reproto/internal/source"
)

// ErrorKind classifies the fatal parse error an entry point returns. A
// Kind other than ErrLex means the parser itself rejected the token
// stream; ErrLex means the lexer produced an invalid token the parser
// could not recover from locally.
type ErrorKind int

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnexpectedEOF
	ErrExtraToken
	ErrLex
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnexpectedEOF:
		return "unexpected end of file"
	case ErrExtraToken:
		return "extra token after a complete production"
	case ErrLex:
		return "lexical error"
	default:
		return "unknown parser error"
	}
}

// Error is the fatal, non-recoverable error an entry point returns. Diag
// codes reported through Options' Reporter along the way (recoverable
// syntax errors) do not produce an Error; only the first unrecoverable
// failure does.
type Error struct {
	kind  ErrorKind
	span  source.Span
	msg   string
	cause error
}

func newError(kind ErrorKind, sp source.Span, msg string) *Error {
	return &Error{kind: kind, span: sp, msg: msg}
}

func wrapLexError(err error, sp source.Span) *Error {
	return &Error{kind: ErrLex, span: sp, msg: err.Error(), cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("parser: %s: %v", e.kind, e.cause)
	}
	return fmt.Sprintf("parser: %s: %s", e.kind, e.msg)
}

func (e *Error) Span() source.Span { return e.span }
func (e *Error) Kind() ErrorKind   { return e.kind }
func (e *Error) Unwrap() error     { return e.cause }
