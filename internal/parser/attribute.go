package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseFileAttributes parses the run of '#![...]' attributes permitted at
// the very top of a file, before any use-declaration or declaration.
func (p *Parser) parseFileAttributes() ([]ast.Located[ast.Attribute], error) {
	var out []ast.Located[ast.Attribute]
	for p.at(token.Hash) && p.peekAt(1).Kind == token.Bang {
		attr, err := p.parseAttribute(true)
		if err != nil {
			return out, err
		}
		out = append(out, attr)
	}
	return out, nil
}

// parseItemAttributes parses the run of '#[...]' attributes attached to a
// declaration or member.
func (p *Parser) parseItemAttributes() ([]ast.Located[ast.Attribute], error) {
	var out []ast.Located[ast.Attribute]
	for p.at(token.Hash) {
		attr, err := p.parseAttribute(false)
		if err != nil {
			return out, err
		}
		out = append(out, attr)
	}
	return out, nil
}

// parseAttribute parses '#[name]' / '#[name(items)]' (or, when fileLevel,
// '#![name]' / '#![name(items)]').
func (p *Parser) parseAttribute(fileLevel bool) (ast.Located[ast.Attribute], error) {
	hashTok := p.advance() // '#'
	if fileLevel {
		p.advance() // '!'
	}

	if _, ok := p.expect(token.LBracket, diag.SynExpectAttrName, "expected '[' to start an attribute"); !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Attribute]{}, fatal
		}
		return ast.Located[ast.Attribute]{}, nil
	}

	name, ok := p.expect(token.Identifier, diag.SynExpectAttrName, "expected an attribute name")
	if !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Attribute]{}, fatal
		}
	}
	nameLoc := ast.At(name.Text, name.Span)

	var value ast.Attribute = ast.AttributeWord{Name: nameLoc}

	if p.at(token.LParen) {
		p.advance()
		items, _ := parseZeroOrMoreTrailing(p, token.Comma, func() bool { return p.at(token.RParen) || p.at(token.EOF) }, p.parseAttributeItem)
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close attribute arguments"); !ok {
			if fatal := p.checkFatal(); fatal != nil {
				return ast.Located[ast.Attribute]{}, fatal
			}
		}
		value = ast.AttributeList{Name: nameLoc, Items: items}
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close an attribute")
	sp := hashTok.Span.Cover(closeTok.Span)
	if !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return ast.Located[ast.Attribute]{}, fatal
		}
	}

	return ast.At(value, sp), nil
}

// parseAttributeItem parses a bare value or a 'name = value' pair inside
// an attribute's argument list.
func (p *Parser) parseAttributeItem() (ast.Located[ast.AttributeItem], bool) {
	if p.at(token.Identifier) && p.peekAt(1).Kind == token.Eq {
		nameTok := p.advance()
		p.advance() // '='
		val, err := p.parseValue()
		if err != nil {
			return ast.Located[ast.AttributeItem]{}, false
		}
		sp := nameTok.Span.Cover(val.Span)
		item := ast.AttrItemNameValue{Name: ast.At(nameTok.Text, nameTok.Span), Value: val}
		return ast.At[ast.AttributeItem](item, sp), true
	}

	val, err := p.parseValue()
	if err != nil {
		return ast.Located[ast.AttributeItem]{}, false
	}
	item := ast.AttrItemWord{Value: val}
	return ast.At[ast.AttributeItem](item, val.Span), true
}
