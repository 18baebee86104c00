package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseValue parses a single Value: a string, number, bare identifier, a
// (possibly qualified) type name, or a parenthesised array of values.
func (p *Parser) parseValue() (ast.Located[ast.Value], error) {
	switch {
	case p.at(token.QuotedString):
		tok := p.advance()
		return ast.At[ast.Value](ast.ValueString{Value: decodeString(tok)}, tok.Span), nil

	case p.at(token.Number):
		tok := p.advance()
		return ast.At[ast.Value](ast.ValueNumber{Value: ast.ParseNumber(tok.Text)}, tok.Span), nil

	case p.at(token.Identifier) && p.peekAt(1).Kind != token.ColonColon:
		tok := p.advance()
		return ast.At[ast.Value](ast.ValueIdentifier{Value: tok.Text}, tok.Span), nil

	case p.at(token.Identifier), p.at(token.TypeIdentifier), p.at(token.ColonColon):
		name, err := p.parseName()
		if err != nil {
			return ast.Located[ast.Value]{}, err
		}
		return ast.At[ast.Value](ast.ValueName{Value: name}, name.Span), nil

	case p.at(token.LParen):
		return p.parseValueArray()

	default:
		sp := p.getDiagnosticSpan()
		p.err(diag.SynUnexpectedToken, "expected a value")
		return ast.Located[ast.Value]{}, newError(ErrUnexpectedToken, sp, "expected a value")
	}
}

func (p *Parser) parseValueArray() (ast.Located[ast.Value], error) {
	open := p.advance() // '('

	values, ok := parseZeroOrMoreTrailing(p, token.Comma,
		func() bool { return p.at(token.RParen) || p.at(token.EOF) },
		func() (ast.Located[ast.Value], bool) {
			v, err := p.parseValue()
			return v, err == nil
		})

	close, expectOK := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close a value array")
	sp := open.Span.Cover(close.Span)
	if !ok || !expectOK {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Value]{}, fatal
		}
	}

	return ast.At[ast.Value](ast.ValueArray{Values: values}, sp), nil
}
