package parser

import (
	"slices"

	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/lexer"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// Parser holds the state needed to parse one file: its token stream, the
// file set it belongs to (for span bookkeeping), and the recoverable-error
// budget and nesting-depth limit configured through Option. buf holds
// tokens read ahead of the cursor; most productions only need one token of
// lookahead, but the file-level '#!' attribute opener needs two.
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	file     *source.File
	cfg      config
	buf      []token.Token
	errCount uint
	depth    int
	lastSpan source.Span
}

func newParser(fs *source.FileSet, file *source.File, cfg config) *Parser {
	lx := lexer.New(file, lexer.Options{Reporter: cfg.reporter})
	p := &Parser{lx: lx, fs: fs, file: file, cfg: cfg}
	p.lastSpan = p.peek().Span
	return p
}

// ParseFile parses a complete .reproto source file.
func ParseFile(origin string, src []byte, opts ...Option) (*ast.File, error) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual(origin, src)
	p := newParser(fs, fs.Get(fid), newConfig(opts))
	return p.parseFile()
}

// ParseTypeMember parses a single member production, as used by
// interface/type/tuple bodies (a field, a code block, or a nested decl).
func ParseTypeMember(origin string, src []byte, opts ...Option) (ast.TypeMember, error) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual(origin, src)
	p := newParser(fs, fs.Get(fid), newConfig(opts))
	m, err := p.parseTypeMember()
	if err != nil {
		return nil, err
	}
	return m, p.expectEOF()
}

// ParseServiceMember parses a single service member production (an
// endpoint, or a nested decl).
func ParseServiceMember(origin string, src []byte, opts ...Option) (ast.ServiceMember, error) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual(origin, src)
	p := newParser(fs, fs.Get(fid), newConfig(opts))
	m, err := p.parseServiceMember()
	if err != nil {
		return nil, err
	}
	return m, p.expectEOF()
}

// ParseValue parses a single value expression.
func ParseValue(origin string, src []byte, opts ...Option) (ast.Value, error) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual(origin, src)
	p := newParser(fs, fs.Get(fid), newConfig(opts))
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return v.Value, p.expectEOF()
}

// ParseType parses a single type expression.
func ParseType(origin string, src []byte, opts ...Option) (ast.Type, error) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual(origin, src)
	p := newParser(fs, fs.Get(fid), newConfig(opts))
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return ty.Value, p.expectEOF()
}

// expectEOF reports ErrExtraToken if tokens remain after a single-
// production entry point has consumed its production.
func (p *Parser) expectEOF() error {
	if p.at(token.EOF) {
		return nil
	}
	tok := p.peek()
	return newError(ErrExtraToken, tok.Span, "unexpected trailing token '"+tok.Text+"'")
}

// fill ensures buf holds at least n+1 tokens.
func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lx.Next())
	}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	p.fill(0)
	return p.buf[0]
}

// peekAt returns the token n positions ahead of the cursor (0 == peek())
// without consuming anything.
func (p *Parser) peekAt(n int) token.Token {
	p.fill(n)
	return p.buf[n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// parseFile is the entry production: an optional file-level doc comment
// and '#!' attributes, zero or more use-declarations, then zero or more
// declarations until EOF.
func (p *Parser) parseFile() (*ast.File, error) {
	startSpan := p.peek().Span

	comment := p.takePackageDoc()
	attrs, err := p.parseFileAttributes()
	if err != nil {
		return nil, err
	}

	f := &ast.File{Comment: comment, Attributes: attrs}

	for p.at(token.KwUse) {
		f.Uses = append(f.Uses, p.parseUse())
	}

	for !p.at(token.EOF) {
		decl, ok := p.parseDecl()
		if !ok {
			if fatal := p.checkFatal(); fatal != nil {
				return nil, fatal
			}
			p.resyncTop()
			continue
		}
		f.Decls = append(f.Decls, decl)
	}

	f.Span = startSpan.Cover(p.peek().Span)
	return f, nil
}

// checkFatal turns an Invalid token sitting at the cursor into a fatal
// *Error, wrapping the lexer's own diagnosis of why the token is invalid.
func (p *Parser) checkFatal() error {
	if !p.at(token.Invalid) {
		return nil
	}
	if le := p.lx.LastError(); le != nil {
		return wrapLexError(le, le.Span())
	}
	return newError(ErrUnexpectedToken, p.peek().Span, "invalid token")
}

var topLevelStarters = []token.Kind{
	token.KwEnum, token.KwType, token.KwInterface, token.KwTuple,
	token.KwService, token.Hash,
}

func isTopLevelStarter(k token.Kind) bool {
	return slices.Contains(topLevelStarters, k)
}

// resyncTop skips tokens until one that can plausibly start the next
// top-level declaration, or EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) && !isTopLevelStarter(p.peek().Kind) {
		p.advance()
	}
}

// resyncUntil skips tokens until one in kinds (or EOF) is reached, without
// consuming it.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

func (p *Parser) enterNesting() bool {
	p.depth++
	return p.depth <= p.cfg.maxNestingDepth
}

func (p *Parser) exitNesting() {
	p.depth--
}
