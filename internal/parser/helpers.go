package parser

import (
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// advance consumes and returns the next token, updating lastSpan so later
// diagnostics have a sensible position even once the cursor reaches EOF.
func (p *Parser) advance() token.Token {
	p.fill(0)
	tok := p.buf[0]
	p.buf = p.buf[1:]
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan returns the best span to attach to a diagnostic raised
// at the current cursor position: the upcoming token's span, or a
// zero-width span right after the last consumed token if the cursor sits
// on a zero-width EOF/Invalid token at offset zero (i.e. nothing has been
// consumed yet).
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) &&
		peek.Span.Start == peek.Span.End && peek.Span.Start == 0 && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes k or reports a fatal-grade error diagnostic and returns
// an Invalid placeholder token so the caller can keep building a partial
// node.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	p.err(code, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.peek().Text}, false
}

// want is like expect but only a warning: used for optional trailing
// punctuation (';' after a use-declaration, for example).
func (p *Parser) want(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.warn(code, msg)
	return p.peek(), false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) warn(code diag.Code, msg string) {
	p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

func (p *Parser) info(code diag.Code, msg string) {
	p.report(code, diag.SevInfo, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError {
		p.errCount++
	}
	if p.cfg.reporter == nil || p.cfg.enough(p.errCount) {
		return
	}
	p.cfg.reporter.Report(code, sev, sp, msg, nil, nil)
}

// docLines converts a token's attached doc-comment trivia into plain
// strings, in source order.
func docLines(tok token.Token) []string {
	tv := tok.DocComments()
	if len(tv) == 0 {
		return nil
	}
	out := make([]string, len(tv))
	for i, t := range tv {
		out[i] = t.Text
	}
	return out
}

// takePackageDoc collects file-level '//!' doc-comment lines attached to
// the very first token of the file.
func (p *Parser) takePackageDoc() []string {
	tv := p.peek().PackageDocComments()
	if len(tv) == 0 {
		return nil
	}
	out := make([]string, len(tv))
	for i, t := range tv {
		out[i] = t.Text
	}
	return out
}

// parseOneOrMore parses (T Sep)* T: at least one T, separated by sep, with
// no trailing separator.
func parseOneOrMore[T any](p *Parser, sep token.Kind, parseOne func() (T, bool)) ([]T, bool) {
	first, ok := parseOne()
	if !ok {
		return nil, false
	}
	out := []T{first}
	for p.at(sep) {
		p.advance()
		next, ok := parseOne()
		if !ok {
			return out, false
		}
		out = append(out, next)
	}
	return out, true
}

// parseZeroOrMore parses an optional OneOrMore<Sep, T>, stopping (without
// consuming) once stop reports true for the upcoming token.
func parseZeroOrMore[T any](p *Parser, sep token.Kind, stop func() bool, parseOne func() (T, bool)) ([]T, bool) {
	if stop() {
		return nil, true
	}
	return parseOneOrMore(p, sep, parseOne)
}

// parseZeroOrMoreTrailing parses zero or more T separated by sep, with an
// optional trailing sep permitted after the last T.
func parseZeroOrMoreTrailing[T any](p *Parser, sep token.Kind, stop func() bool, parseOne func() (T, bool)) ([]T, bool) {
	var out []T
	for !stop() {
		item, ok := parseOne()
		if !ok {
			return out, false
		}
		out = append(out, item)
		if p.at(sep) {
			p.advance()
			continue
		}
		break
	}
	return out, true
}
