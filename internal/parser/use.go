package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// parseUse parses: "use" Loc<Package> Loc<"string">? UseAlias? (";")?
// A malformed package path does not abort the file: recoverPackage
// reports one diagnostic, resyncs to a safe point, and yields
// Package::Error so the caller keeps going.
func (p *Parser) parseUse() ast.Located[ast.UseDecl] {
	useTok := p.advance() // KwUse

	pkg := p.parsePackage()

	decl := ast.UseDecl{Package: pkg}

	if p.at(token.QuotedString) {
		tok := p.advance()
		text := decodeString(tok)
		decl.Range = &ast.Located[string]{Value: text, Span: tok.Span}
	}

	if p.at(token.KwAs) {
		p.advance()
		alias, ok := p.expect(token.Identifier, diag.SynExpectIdentAfterAs, "expected identifier after 'as'")
		if ok {
			decl.Alias = &ast.Located[string]{Value: alias.Text, Span: alias.Span}
		}
	}

	endSpan := useTok.Span.Cover(pkg.Span)
	if decl.Range != nil {
		endSpan = endSpan.Cover(decl.Range.Span)
	}
	if decl.Alias != nil {
		endSpan = endSpan.Cover(decl.Alias.Span)
	}

	if p.at(token.Semicolon) {
		semi := p.advance()
		endSpan = endSpan.Cover(semi.Span)
		sp := semi.Span
		decl.Endl = &sp
	}

	return ast.At(decl, endSpan)
}

// parsePackage parses a dot-separated sequence of identifiers. A failure
// reports SynExpectPathSegment, resyncs to the next plausible boundary
// (a string, 'as', ';', or a top-level starter), and yields the
// Package::Error recovery sentinel.
func (p *Parser) parsePackage() ast.Located[ast.Package] {
	start := p.peek().Span

	if !p.at(token.Identifier) {
		return p.recoverPackage(start)
	}

	parts, ok := parseOneOrMore(p, token.Dot, func() (ast.Located[string], bool) {
		if !p.at(token.Identifier) {
			return ast.Located[string]{}, false
		}
		tok := p.advance()
		return ast.At(tok.Text, tok.Span), true
	})
	if !ok {
		return p.recoverPackage(start)
	}

	sp := start.Cover(parts[len(parts)-1].Span)
	return ast.At[ast.Package](ast.PackageParts{Parts: parts}, sp)
}

func (p *Parser) recoverPackage(start source.Span) ast.Located[ast.Package] {
	p.err(diag.SynExpectPathSegment, "expected a package path")
	p.resyncUntil(token.QuotedString, token.KwAs, token.Semicolon,
		token.KwEnum, token.KwType, token.KwInterface, token.KwTuple, token.KwService, token.Hash, token.EOF)
	sp := start.Cover(p.getDiagnosticSpan())
	return ast.At[ast.Package](ast.PackageError{}, sp)
}
