package diagfmt

import (
	"io"

	"github.com/eaburns/pretty"

	"github.com/nezdolik/reproto/internal/ast"
)

func init() {
	pretty.Indent = "  "
}

// InspectAST writes a structural dump of f, the output of "reprotoparse
// parse --inspect" and an alternative to the box-drawing tree printer
// behind "parse --tree", useful when a reader
// wants to see every field rather than a curated summary.
func InspectAST(w io.Writer, f *ast.File) error {
	_, err := io.WriteString(w, pretty.String(f))
	return err
}
