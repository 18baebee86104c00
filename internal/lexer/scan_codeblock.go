package lexer

import (
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// scanCodeContent consumes raw verbatim text up to (but not including) the
// closing '}}' of a code block. It runs once right after the lexer has seen
// the opening '{{', with lx.inCode set; it clears lx.inCode itself once it
// hands back to normal dispatch, so the closing '}}' is lexed the usual way
// by scanOperatorOrPunct. No escape processing and no trivia collection
// happen inside a code block: everything between the braces is verbatim.
func (lx *Lexer) scanCodeContent() token.Token {
	lx.inCode = false
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '}' && b1 == '}' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)

	if lx.cursor.EOF() {
		lx.errLex(diag.LexUnterminatedCode, sp, "unterminated code block")
	}

	return token.Token{Kind: token.CodeContent, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
