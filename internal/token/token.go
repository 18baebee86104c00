package token

import (
	"github.com/nezdolik/reproto/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number, string or code-block
// content literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, QuotedString, CodeContent:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is structural punctuation.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, LBracket, RBracket, LDoubleBrace, RDoubleBrace,
		Semicolon, Colon, ColonColon, Comma, Dot, Question, Hash, Bang, Arrow, Eq:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword, including the
// built-in type names.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwUse, KwAs, KwEnum, KwType, KwInterface, KwTuple, KwService, KwStream,
		KwAny, KwFloat, KwDouble, KwU32, KwU64, KwI32, KwI64, KwBoolean, KwString,
		KwDatetime, KwBytes:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier or type identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier || t.Kind == TypeIdentifier }

// DocComments returns the item-level doc-comment trivia (TriviaDocLine) attached to
// this token's leading trivia, in source order, with comment markers and at
// most one leading space already stripped from Text.
func (t Token) DocComments() []Trivia {
	var out []Trivia
	for _, tv := range t.Leading {
		if tv.Kind == TriviaDocLine {
			out = append(out, tv)
		}
	}
	return out
}

// PackageDocComments returns the file/package-level doc-comment trivia
// (TriviaPackageDoc, from '//!' lines) attached to this token.
func (t Token) PackageDocComments() []Trivia {
	var out []Trivia
	for _, tv := range t.Leading {
		if tv.Kind == TriviaPackageDoc {
			out = append(out, tv)
		}
	}
	return out
}
