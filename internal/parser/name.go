package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseName parses prefix::Path::Segments, ::Path::Segments, or a bare
// Path (no prefix, no leading '::'). A leading '::' with no identifier
// before it yields RelativeName; the other two shapes yield AbsoluteName,
// with Prefix nil for a bare Path (see the Name disambiguation decision in
// DESIGN.md). parseName is not itself a recovery production: a malformed name
// returns an error for the caller (parseType, the designated recovery
// point for names used as types) to turn into Type::Error.
func (p *Parser) parseName() (ast.Located[ast.Name], error) {
	start := p.peek().Span

	var prefix *ast.Located[string]
	relative := false
	switch {
	case p.at(token.Identifier):
		tok := p.advance()
		loc := ast.At(tok.Text, tok.Span)
		prefix = &loc
		if _, ok := p.expect(token.ColonColon, diag.SynExpectPathSegment, "expected '::' after a package prefix"); !ok {
			return ast.Located[ast.Name]{}, newError(ErrUnexpectedToken, p.getDiagnosticSpan(), "expected '::' after a package prefix")
		}
	case p.at(token.ColonColon):
		p.advance()
		relative = true
	}

	path, ok := parseOneOrMore(p, token.ColonColon, func() (ast.Located[string], bool) {
		if !p.at(token.TypeIdentifier) {
			return ast.Located[string]{}, false
		}
		tok := p.advance()
		return ast.At(tok.Text, tok.Span), true
	})
	if !ok {
		p.err(diag.SynExpectPathSegment, "expected a type name")
		return ast.Located[ast.Name]{}, newError(ErrUnexpectedToken, p.getDiagnosticSpan(), "expected a type name")
	}

	sp := start.Cover(path[len(path)-1].Span)
	if relative {
		return ast.At[ast.Name](ast.RelativeName{Path: path}, sp), nil
	}
	return ast.At[ast.Name](ast.AbsoluteName{Prefix: prefix, Path: path}, sp), nil
}
