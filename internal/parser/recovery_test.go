package parser_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/parser"
)

// A malformed field type is absorbed by Type's designated recovery: the
// enclosing type decl still parses, with a Type::Error sentinel standing in
// for the bad field and the fields on either side intact.
func TestRecoveryLocality(t *testing.T) {
	bag := diag.NewBag(32)
	f, err := parser.ParseFile("test.reproto", []byte(`type Foo { a: string; b: %%%; c: string; }`),
		parser.WithReporter(diag.BagReporter{Bag: bag}))
	if err != nil {
		t.Fatalf("expected recovery to absorb the error, got: %v", err)
	}
	if !bag.HasErrors() {
		t.Fatal("expected at least one diagnostic to have been reported")
	}
	decl := f.Decls[0].(*ast.TypeDecl)
	if len(decl.Body.Value.Members) != 3 {
		t.Fatalf("expected 3 members (a, b, c) to survive, got %d", len(decl.Body.Value.Members))
	}
	b := decl.Body.Value.Members[1].(ast.FieldMember)
	if _, ok := b.Item.Body.Value.Type.Value.(ast.TypeError); !ok {
		t.Fatalf("expected field b's type to be TypeError, got %T", b.Item.Body.Value.Type.Value)
	}
	c := decl.Body.Value.Members[2].(ast.FieldMember)
	if c.Item.Body.Value.Name.Value != "c" {
		t.Fatalf("expected field c to still parse, got %q", c.Item.Body.Value.Name.Value)
	}
}

// A malformed package path is absorbed by Package's designated recovery:
// the use-declaration survives as a PackageError sentinel and parsing
// continues past it.
func TestPackageRecoveryLocality(t *testing.T) {
	bag := diag.NewBag(32)
	f, err := parser.ParseFile("test.reproto", []byte("use ;\ntype X { }"),
		parser.WithReporter(diag.BagReporter{Bag: bag}))
	if err != nil {
		t.Fatalf("expected recovery to absorb the error, got: %v", err)
	}
	if !bag.HasErrors() {
		t.Fatal("expected at least one diagnostic to have been reported")
	}
	if len(f.Uses) != 1 {
		t.Fatalf("expected the use decl to survive, got %d uses", len(f.Uses))
	}
	if _, ok := f.Uses[0].Value.Package.Value.(ast.PackageError); !ok {
		t.Fatalf("expected PackageError, got %T", f.Uses[0].Value.Package.Value)
	}
	if len(f.Decls) != 1 {
		t.Fatalf("expected parsing to continue to the following decl, got %d decls", len(f.Decls))
	}
}

// Spans nest: a field's span sits within its declaration's span, which sits
// within the file's span.
func TestSpanContainment(t *testing.T) {
	f := mustParseFile(t, `type Foo { name: string; }`)
	decl := f.Decls[0].(*ast.TypeDecl)
	fm := decl.Body.Value.Members[0].(ast.FieldMember)

	fieldSpan := fm.Item.Body.Span
	declSpan := decl.Body.Span

	if fieldSpan.Start < declSpan.Start || fieldSpan.End > declSpan.End {
		t.Fatalf("expected field span %v contained in decl span %v", fieldSpan, declSpan)
	}
	if declSpan.Start < f.Span.Start || declSpan.End > f.Span.End {
		t.Fatalf("expected decl span %v contained in file span %v", declSpan, f.Span)
	}
}
