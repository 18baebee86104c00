package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseField parses: Identifier "?"? ":" Type UseAlias? ";"?
// A field whose name is followed by neither '?' nor ':' is not a field at
// all; callers only reach here once lookahead has already ruled out the
// Code and InnerDecl shapes.
func (p *Parser) parseField(comment []string, attrs []ast.Located[ast.Attribute]) (*ast.Item[ast.Field], bool) {
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected a field name")
	if !ok {
		return nil, false
	}

	field := ast.Field{Name: ast.At(name.Text, name.Span), Required: true}
	end := name.Span

	if p.at(token.Question) {
		q := p.advance()
		field.Required = false
		end = q.Span
	}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after a field name"); !ok {
		return nil, false
	}

	ty, err := p.parseType()
	if err != nil {
		return nil, false
	}
	field.Type = ty
	end = ty.Span

	if p.at(token.KwAs) {
		p.advance()
		as, ok := p.parseFieldAs()
		if !ok {
			return nil, false
		}
		field.FieldAs = &as
		end = p.lastSpan
	}

	if semi, ok := p.want(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after a field"); ok {
		field.Endl = true
		end = semi.Span
	}

	return &ast.Item[ast.Field]{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(field, name.Span.Cover(end)),
	}, true
}

// parseFieldAs parses the target of an 'as' clause: either a bare
// identifier or a quoted string, both of which name the same thing
// (a wire-level rename) for Field, UseDecl, and Endpoint alike.
func (p *Parser) parseFieldAs() (string, bool) {
	switch {
	case p.at(token.Identifier):
		return p.advance().Text, true
	case p.at(token.QuotedString):
		return decodeString(p.advance()), true
	default:
		p.err(diag.SynExpectIdentAfterAs, "expected an identifier or string after 'as'")
		return "", false
	}
}
