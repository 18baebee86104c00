package lexer

import (
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter may be nil, in which case lexical errors are silently
	// dropped but lexing still continues to the next token.
	Reporter diag.Reporter
}

// errLex reports a lexical error at sp through the configured Reporter.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.lastErr = &Error{Kind: kindForCode(code), Pos: sp, Msg: msg}
	if lx.opts.Reporter != nil {
		diag.ReportFromCode(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
