package parser

import (
	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/token"
)

// parseDecl dispatches on the upcoming keyword to build one of the five
// concrete Decl shapes. It is not a recovery production: a structural
// failure here is reported once and surfaces as (nil, false), leaving the
// caller (parseFile's top-level loop) to resync.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	comment := docLines(p.peek())
	attrs, err := p.parseItemAttributes()
	if err != nil {
		return nil, false
	}
	return p.parseDeclWith(comment, attrs)
}

func (p *Parser) parseEnumDecl(comment []string, attrs []ast.Located[ast.Attribute]) (ast.Decl, bool) {
	kw := p.advance() // 'enum'

	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected an enum name")
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.KwAs, diag.SynExpectDeclBody, "expected 'as' after an enum name"); !ok {
		return nil, false
	}

	ty, err := p.parseType()
	if err != nil {
		return nil, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectDeclBody, "expected '{' to start an enum body"); !ok {
		return nil, false
	}

	body := ast.EnumBody{Name: ast.At(name.Text, name.Span), Ty: ty}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		memberComment := docLines(p.peek())
		memberAttrs, err := p.parseItemAttributes()
		if err != nil {
			return nil, false
		}

		if p.at(token.Identifier) {
			code, err := p.parseCode(memberAttrs)
			if err != nil {
				return nil, false
			}
			body.Members = append(body.Members, ast.CodeEnumMember{Code: code})
			continue
		}

		variant, ok := p.parseEnumVariant(memberComment, memberAttrs)
		if !ok {
			return nil, false
		}
		body.Variants = append(body.Variants, variant)
	}

	close, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close an enum body")
	if !ok {
		return nil, false
	}

	decl := &ast.EnumDecl{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(body, kw.Span.Cover(close.Span)),
	}
	return decl, true
}

func (p *Parser) parseEnumVariant(comment []string, attrs []ast.Located[ast.Attribute]) (*ast.Item[ast.EnumVariant], bool) {
	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected an enum variant name")
	if !ok {
		return nil, false
	}

	variant := ast.EnumVariant{Name: ast.At(name.Text, name.Span)}
	end := name.Span

	if p.at(token.KwAs) {
		p.advance()
		val, err := p.parseValue()
		if err != nil {
			return nil, false
		}
		variant.Argument = &val
		end = val.Span
	}

	if semi, ok := p.want(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after an enum variant"); ok {
		end = semi.Span
	}

	return &ast.Item[ast.EnumVariant]{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(variant, name.Span.Cover(end)),
	}, true
}

func (p *Parser) parseInterfaceDecl(comment []string, attrs []ast.Located[ast.Attribute]) (ast.Decl, bool) {
	kw := p.advance() // 'interface'

	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected an interface name")
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectDeclBody, "expected '{' to start an interface body"); !ok {
		return nil, false
	}

	body := ast.InterfaceBody{Name: ast.At(name.Text, name.Span)}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		memberComment := docLines(p.peek())
		memberAttrs, err := p.parseItemAttributes()
		if err != nil {
			return nil, false
		}

		if p.at(token.TypeIdentifier) {
			sub, ok := p.parseSubType(memberComment, memberAttrs)
			if !ok {
				return nil, false
			}
			body.SubTypes = append(body.SubTypes, sub)
			continue
		}

		member, ok := p.parseTypeMemberWith(memberComment, memberAttrs)
		if !ok {
			return nil, false
		}
		body.Members = append(body.Members, member)
	}

	close, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close an interface body")
	if !ok {
		return nil, false
	}

	decl := &ast.InterfaceDecl{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(body, kw.Span.Cover(close.Span)),
	}
	return decl, true
}

func (p *Parser) parseSubType(comment []string, attrs []ast.Located[ast.Attribute]) (*ast.Item[ast.SubType], bool) {
	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected a sub-type name")
	if !ok {
		return nil, false
	}

	sub := ast.SubType{Name: ast.At(name.Text, name.Span)}
	end := name.Span

	if p.at(token.KwAs) {
		p.advance()
		val, err := p.parseValue()
		if err != nil {
			return nil, false
		}
		sub.Alias = &val
		end = val.Span
	}

	switch {
	case p.at(token.Semicolon):
		semi := p.advance()
		end = semi.Span

	case p.at(token.LBrace):
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			memberComment := docLines(p.peek())
			memberAttrs, err := p.parseItemAttributes()
			if err != nil {
				return nil, false
			}
			member, ok := p.parseTypeMemberWith(memberComment, memberAttrs)
			if !ok {
				return nil, false
			}
			sub.Members = append(sub.Members, member)
		}
		close, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close a sub-type body")
		if !ok {
			return nil, false
		}
		end = close.Span

	default:
		p.err(diag.SynExpectDeclBody, "expected ';' or '{' after a sub-type name")
		return nil, false
	}

	return &ast.Item[ast.SubType]{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(sub, name.Span.Cover(end)),
	}, true
}

func (p *Parser) parseTypeDecl(comment []string, attrs []ast.Located[ast.Attribute]) (ast.Decl, bool) {
	kw := p.advance() // 'type'

	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected a type name")
	if !ok {
		return nil, false
	}

	members, close, ok := p.parseBraceMembers(false)
	if !ok {
		return nil, false
	}

	decl := &ast.TypeDecl{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(ast.TypeBody{Name: ast.At(name.Text, name.Span), Members: members}, kw.Span.Cover(close.Span)),
	}
	return decl, true
}

func (p *Parser) parseTupleDecl(comment []string, attrs []ast.Located[ast.Attribute]) (ast.Decl, bool) {
	kw := p.advance() // 'tuple'

	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected a tuple name")
	if !ok {
		return nil, false
	}

	members, close, ok := p.parseBraceMembers(true)
	if !ok {
		return nil, false
	}

	decl := &ast.TupleDecl{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(ast.TupleBody{Name: ast.At(name.Text, name.Span), Members: members}, kw.Span.Cover(close.Span)),
	}
	return decl, true
}

// parseBraceMembers parses the '{ TypeMember* }' body shared by type and
// tuple declarations. isTuple only affects a style diagnostic: an
// optional field inside a tuple body is reported at info level but not
// rejected at this layer.
func (p *Parser) parseBraceMembers(isTuple bool) ([]ast.TypeMember, token.Token, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynExpectDeclBody, "expected '{' to start a declaration body"); !ok {
		return nil, token.Token{}, false
	}

	var members []ast.TypeMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		comment := docLines(p.peek())
		attrs, err := p.parseItemAttributes()
		if err != nil {
			return nil, token.Token{}, false
		}
		member, ok := p.parseTypeMemberWith(comment, attrs)
		if !ok {
			return nil, token.Token{}, false
		}
		if isTuple {
			if fm, ok := member.(ast.FieldMember); ok && !fm.Item.Body.Value.Required {
				p.info(diag.SynTupleFieldNotAllowed, "optional fields are unusual in a tuple body")
			}
		}
		members = append(members, member)
	}

	close, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close a declaration body")
	if !ok {
		return nil, token.Token{}, false
	}
	return members, close, true
}

func (p *Parser) parseServiceDecl(comment []string, attrs []ast.Located[ast.Attribute]) (ast.Decl, bool) {
	kw := p.advance() // 'service'

	name, ok := p.expect(token.TypeIdentifier, diag.SynExpectIdentifier, "expected a service name")
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectDeclBody, "expected '{' to start a service body"); !ok {
		return nil, false
	}

	var members []ast.ServiceMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		memberComment := docLines(p.peek())
		memberAttrs, err := p.parseItemAttributes()
		if err != nil {
			return nil, false
		}
		member, ok := p.parseServiceMemberWith(memberComment, memberAttrs)
		if !ok {
			return nil, false
		}
		members = append(members, member)
	}

	close, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close a service body")
	if !ok {
		return nil, false
	}

	decl := &ast.ServiceDecl{
		Comment:    comment,
		Attributes: attrs,
		Body:       ast.At(ast.ServiceBody{Name: ast.At(name.Text, name.Span), Members: members}, kw.Span.Cover(close.Span)),
	}
	return decl, true
}

// parseTypeMember is the standalone entry point used by ParseTypeMember:
// it parses a single TypeMember with no enclosing declaration.
func (p *Parser) parseTypeMember() (ast.TypeMember, error) {
	comment := docLines(p.peek())
	attrs, err := p.parseItemAttributes()
	if err != nil {
		return nil, err
	}
	m, ok := p.parseTypeMemberWith(comment, attrs)
	if !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return nil, fatal
		}
		return nil, newError(ErrUnexpectedToken, p.getDiagnosticSpan(), "expected a field, code block, or declaration")
	}
	return m, nil
}

// parseTypeMemberWith dispatches on the lookahead to build a Field, Code,
// or nested-Decl member, given comment/attrs already collected by the
// caller (so the same logic can be shared by bodies and the standalone
// entry point).
func (p *Parser) parseTypeMemberWith(comment []string, attrs []ast.Located[ast.Attribute]) (ast.TypeMember, bool) {
	if isTopLevelStarter(p.peek().Kind) {
		decl, ok := p.parseDeclWith(comment, attrs)
		if !ok {
			return nil, false
		}
		return ast.InnerDeclMember{Decl: decl}, true
	}

	if p.at(token.Identifier) && p.peekAt(1).Kind == token.LDoubleBrace {
		code, err := p.parseCode(attrs)
		if err != nil {
			return nil, false
		}
		return ast.CodeMember{Code: code}, true
	}

	field, ok := p.parseField(comment, attrs)
	if !ok {
		return nil, false
	}
	return ast.FieldMember{Item: field}, true
}

// parseDeclWith continues decl parsing with comment/attrs already taken,
// used when a declaration appears nested inside another body.
func (p *Parser) parseDeclWith(comment []string, attrs []ast.Located[ast.Attribute]) (ast.Decl, bool) {
	if !p.enterNesting() {
		p.exitNesting()
		p.err(diag.SynUnexpectedToken, "declarations are nested too deeply")
		return nil, false
	}
	defer p.exitNesting()

	switch p.peek().Kind {
	case token.KwEnum:
		return p.parseEnumDecl(comment, attrs)
	case token.KwType:
		return p.parseTypeDecl(comment, attrs)
	case token.KwInterface:
		return p.parseInterfaceDecl(comment, attrs)
	case token.KwTuple:
		return p.parseTupleDecl(comment, attrs)
	case token.KwService:
		return p.parseServiceDecl(comment, attrs)
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected a nested declaration")
		return nil, false
	}
}

// parseServiceMember is the standalone entry point used by
// ParseServiceMember.
func (p *Parser) parseServiceMember() (ast.ServiceMember, error) {
	comment := docLines(p.peek())
	attrs, err := p.parseItemAttributes()
	if err != nil {
		return nil, err
	}
	m, ok := p.parseServiceMemberWith(comment, attrs)
	if !ok {
		if fatal := p.checkFatal(); fatal != nil {
			return nil, fatal
		}
		return nil, newError(ErrUnexpectedToken, p.getDiagnosticSpan(), "expected an endpoint or a declaration")
	}
	return m, nil
}

func (p *Parser) parseServiceMemberWith(comment []string, attrs []ast.Located[ast.Attribute]) (ast.ServiceMember, bool) {
	if isTopLevelStarter(p.peek().Kind) {
		decl, ok := p.parseDeclWith(comment, attrs)
		if !ok {
			return nil, false
		}
		return ast.ServiceInnerDecl{Decl: decl}, true
	}

	endpoint, ok := p.parseEndpoint(comment, attrs)
	if !ok {
		return nil, false
	}
	return ast.EndpointMember{Item: endpoint}, true
}
