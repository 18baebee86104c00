package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

var builtinTypeTokens = map[token.Kind]ast.Type{
	token.KwAny:      ast.TypeAny{},
	token.KwFloat:    ast.TypeFloat{},
	token.KwDouble:   ast.TypeDouble{},
	token.KwBoolean:  ast.TypeBoolean{},
	token.KwString:   ast.TypeString{},
	token.KwDatetime: ast.TypeDateTime{},
	token.KwBytes:    ast.TypeBytes{},
	token.KwU32:      ast.TypeUnsigned{Size: 32},
	token.KwU64:      ast.TypeUnsigned{Size: 64},
	token.KwI32:      ast.TypeSigned{Size: 32},
	token.KwI64:      ast.TypeSigned{Size: 64},
}

// parseType is the designated Type recovery production: a local failure
// anywhere inside it is reported once and converted to Type::Error rather
// than propagated, so a single malformed field type does not abort the
// enclosing declaration.
func (p *Parser) parseType() (ast.Located[ast.Type], error) {
	switch {
	case p.at(token.LBracket):
		open := p.advance()
		inner, err := p.parseType()
		if err != nil {
			return ast.Located[ast.Type]{}, err
		}
		close, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close an array type")
		sp := open.Span.Cover(close.Span)
		if !ok {
			return p.recoverType(open.Span, true)
		}
		return ast.At[ast.Type](ast.TypeArray{Inner: inner}, sp), nil

	case p.at(token.Identifier), p.at(token.TypeIdentifier), p.at(token.ColonColon):
		start := p.peek().Span
		name, err := p.parseName()
		if err != nil {
			return p.recoverType(start, true)
		}
		return ast.At[ast.Type](ast.TypeName{Name: name}, name.Span), nil

	default:
		if ty, ok := builtinTypeTokens[p.peek().Kind]; ok {
			tok := p.advance()
			return ast.At(ty, tok.Span), nil
		}
		return p.recoverType(p.getDiagnosticSpan(), false)
	}
}

// recoverType optionally reports SynExpectType, resyncs to a safe
// resumption point (a separator or closing delimiter, without crossing a
// member boundary), and returns the Type::Error sentinel. alreadyReported
// is true when the caller already emitted a more specific diagnostic
// (e.g. an unclosed ']') and a second one would be noise.
func (p *Parser) recoverType(start source.Span, alreadyReported bool) (ast.Located[ast.Type], error) {
	if !alreadyReported {
		p.err(diag.SynExpectType, "expected a type")
	}
	p.resyncUntil(token.Semicolon, token.Comma, token.RBrace, token.RParen, token.RBracket,
		token.KwAs, token.EOF)
	sp := start.Cover(p.getDiagnosticSpan())
	return ast.At[ast.Type](ast.TypeError{}, sp), nil
}
