package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseCode parses a code member: its own attributes, a context
// identifier naming the target the block is written for, and the
// '{{ ... }}' verbatim body, normalised per ast.NormaliseCode.
func (p *Parser) parseCode(attrs []ast.Located[ast.Attribute]) (ast.Located[ast.Code], error) {
	ctxTok, ok := p.expect(token.Identifier, diag.SynExpectDeclBody, "expected a code block context identifier")
	if !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Code]{}, fatal
		}
	}

	if _, ok := p.expect(token.LDoubleBrace, diag.SynExpectDeclBody, "expected '{{' to open a code block"); !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Code]{}, fatal
		}
	}

	contentTok, _ := p.expect(token.CodeContent, diag.LexUnterminatedCode, "expected code block content")

	closeTok, ok := p.expect(token.RDoubleBrace, diag.SynUnclosedBrace, "expected '}}' to close a code block")
	if !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Code]{}, fatal
		}
	}

	sp := ctxTok.Span.Cover(closeTok.Span)
	code := ast.Code{
		Attributes: attrs,
		Context:    ast.At(ctxTok.Text, ctxTok.Span),
		Content:    ast.NormaliseCode(contentTok.Text),
	}
	return ast.At(code, sp), nil
}
