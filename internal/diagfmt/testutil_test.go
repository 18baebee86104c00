package diagfmt_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/lexer"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

type tokenized struct {
	fs   *source.FileSet
	toks []token.Token
}

func parseAndTokenize(t *testing.T, src string) (*tokenized, error) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("<test>", []byte(src))
	lx := lexer.New(fs.Get(fid), lexer.Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &tokenized{fs: fs, toks: toks}, nil
}
