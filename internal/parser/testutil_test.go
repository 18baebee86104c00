package parser_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/parser"
)

func mustParseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile("test.reproto", []byte(src))
	if err != nil {
		t.Fatalf("ParseFile(%q): unexpected error: %v", src, err)
	}
	return f
}
