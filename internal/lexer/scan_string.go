package lexer

import (
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// scanString scans a double-quoted string literal. The returned token's Text
// is the raw lexeme including quotes; escape decoding is left to the ast
// layer, but the lexer still validates that every escape is one of the
// recognized forms so malformed strings fail fast with a precise span.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.QuotedString, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		case b == '\\':
			lx.scanEscape()

		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

var validShortEscapes = map[byte]bool{
	'n': true, 'r': true, 't': true, '\\': true, '"': true,
}

// scanEscape consumes a backslash escape and reports LexInvalidEscape for
// anything other than \n \r \t \\ \" \uXXXX. It returns the span of the
// escape it consumed, or a zero-length span if the string ended mid-escape.
func (lx *Lexer) scanEscape() (sp source.Span) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	if lx.cursor.EOF() {
		return lx.cursor.SpanFrom(start)
	}
	b := lx.cursor.Peek()
	switch {
	case validShortEscapes[b]:
		lx.cursor.Bump()
	case b == 'u':
		lx.cursor.Bump()
		for i := 0; i < 4; i++ {
			if lx.cursor.EOF() || !isHexDigit(lx.cursor.Peek()) {
				esc := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexInvalidEscape, esc, "expected 4 hex digits after '\\u'")
				return esc
			}
			lx.cursor.Bump()
		}
	default:
		lx.cursor.Bump()
		esc := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidEscape, esc, "unrecognized escape sequence")
		return esc
	}
	return lx.cursor.SpanFrom(start)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
