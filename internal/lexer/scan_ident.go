package lexer

import (
	"unicode"

	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it as a keyword,
// TypeIdentifier (uppercase-leading), or Identifier (lowercase/underscore
// leading). Keywords are matched case-sensitively against lowercase
// identifiers only, since every keyword is itself lowercase.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp}
	}

	firstUpper := r < utf8RuneSelf && r >= 'A' && r <= 'Z' || (r >= utf8RuneSelf && unicode.IsUpper(r))

	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)

	if sp.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, sp, "identifier exceeds maximum token length")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	text := string(lx.file.Content[sp.Start:sp.End])

	if !firstUpper {
		if k, ok := token.LookupKeyword(text); ok {
			return token.Token{Kind: k, Span: sp, Text: text}
		}
		return token.Token{Kind: token.Identifier, Span: sp, Text: text}
	}

	return token.Token{Kind: token.TypeIdentifier, Span: sp, Text: text}
}
