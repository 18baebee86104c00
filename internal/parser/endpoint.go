package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseEndpoint parses:
//
//	Identifier "(" (EndpointArgument ("," EndpointArgument)*)? ")"
//	  ("->" Channel)? UseAlias? ";"
//
// The trailing ';' is mandatory, unlike the optional, span-recorded ';' on
// a UseDecl.
func (p *Parser) parseEndpoint(comment []string, attrs []ast.Located[ast.Attribute]) (*ast.Item[ast.Endpoint], bool) {
	id, ok := p.expect(token.Identifier, diag.SynExpectEndpointMethod, "expected an endpoint name")
	if !ok {
		return nil, false
	}

	endpoint := ast.Endpoint{ID: ast.At(id.Text, id.Span)}
	end := id.Span

	open, ok := p.expect(token.LParen, diag.SynExpectDeclBody, "expected '(' after an endpoint name")
	if !ok {
		return nil, false
	}
	end = open.Span

	args, ok := parseZeroOrMoreTrailing(p, token.Comma,
		func() bool { return p.at(token.RParen) || p.at(token.EOF) },
		p.parseEndpointArgument)
	if !ok {
		return nil, false
	}
	endpoint.Arguments = args

	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close an endpoint's arguments")
	if !ok {
		return nil, false
	}
	end = close.Span

	if p.at(token.Arrow) {
		p.advance()
		ch, err := p.parseChannel()
		if err != nil {
			return nil, false
		}
		endpoint.Response = &ch
		end = ch.Span
	}

	if p.at(token.KwAs) {
		p.advance()
		as, ok := p.parseFieldAs()
		if !ok {
			return nil, false
		}
		endpoint.Alias = &as
		end = p.lastSpan
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after an endpoint")
	if !ok {
		return nil, false
	}
	end = semi.Span

	return &ast.Item[ast.Endpoint]{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(endpoint, id.Span.Cover(end)),
	}, true
}

func (p *Parser) parseEndpointArgument() (ast.EndpointArgument, bool) {
	ident, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected an argument name")
	if !ok {
		return ast.EndpointArgument{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after an argument name"); !ok {
		return ast.EndpointArgument{}, false
	}
	ch, err := p.parseChannel()
	if err != nil {
		return ast.EndpointArgument{}, false
	}
	return ast.EndpointArgument{Ident: ast.At(ident.Text, ident.Span), Channel: ch}, true
}

// parseChannel parses an optional 'stream' marker followed by a Type.
func (p *Parser) parseChannel() (ast.Located[ast.Channel], error) {
	if p.at(token.KwStream) {
		kw := p.advance()
		ty, err := p.parseType()
		if err != nil {
			return ast.Located[ast.Channel]{}, err
		}
		return ast.At[ast.Channel](ast.Streaming{Ty: ty}, kw.Span.Cover(ty.Span)), nil
	}

	ty, err := p.parseType()
	if err != nil {
		return ast.Located[ast.Channel]{}, err
	}
	return ast.At[ast.Channel](ast.Unary{Ty: ty}, ty.Span), nil
}
