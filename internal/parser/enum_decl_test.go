package parser_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/ast"
)

func TestEnumWithAliasedVariant(t *testing.T) {
	f := mustParseFile(t, `enum E as string { A as "a"; B; }`)
	decl := f.Decls[0].(*ast.EnumDecl)
	if decl.Body.Value.Name.Value != "E" {
		t.Fatalf("expected enum name E, got %q", decl.Body.Value.Name.Value)
	}
	if len(decl.Body.Value.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(decl.Body.Value.Variants))
	}
	a := decl.Body.Value.Variants[0]
	if a.Body.Value.Name.Value != "A" {
		t.Fatalf("expected variant A, got %q", a.Body.Value.Name.Value)
	}
	if a.Body.Value.Argument == nil {
		t.Fatal("expected variant A to carry an argument")
	}
	str, ok := a.Body.Value.Argument.Value.(ast.ValueString)
	if !ok || str.Value != "a" {
		t.Fatalf("expected ValueString(\"a\"), got %#v", a.Body.Value.Argument.Value)
	}
	b := decl.Body.Value.Variants[1]
	if b.Body.Value.Argument != nil {
		t.Fatal("expected variant B to carry no argument")
	}
}

func TestEnumWithCodeMember(t *testing.T) {
	f := mustParseFile(t, "enum E as string { A; java {{\n x\n}} }")
	decl := f.Decls[0].(*ast.EnumDecl)
	if len(decl.Body.Value.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(decl.Body.Value.Variants))
	}
	if len(decl.Body.Value.Members) != 1 {
		t.Fatalf("expected 1 code member, got %d", len(decl.Body.Value.Members))
	}
	if _, ok := decl.Body.Value.Members[0].(ast.CodeEnumMember); !ok {
		t.Fatalf("expected CodeEnumMember, got %T", decl.Body.Value.Members[0])
	}
}
