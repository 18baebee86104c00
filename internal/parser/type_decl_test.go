package parser_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/ast"
)

func TestSimpleRequiredField(t *testing.T) {
	f := mustParseFile(t, `type Foo { name: string; }`)
	if len(f.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(f.Decls))
	}
	decl, ok := f.Decls[0].(*ast.TypeDecl)
	if !ok {
		t.Fatalf("expected *ast.TypeDecl, got %T", f.Decls[0])
	}
	if decl.Body.Value.Name.Value != "Foo" {
		t.Fatalf("expected type name Foo, got %q", decl.Body.Value.Name.Value)
	}
	if len(decl.Body.Value.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(decl.Body.Value.Members))
	}
	fm, ok := decl.Body.Value.Members[0].(ast.FieldMember)
	if !ok {
		t.Fatalf("expected FieldMember, got %T", decl.Body.Value.Members[0])
	}
	if fm.Item.Body.Value.Name.Value != "name" {
		t.Fatalf("expected field name 'name', got %q", fm.Item.Body.Value.Name.Value)
	}
	if !fm.Item.Body.Value.Required {
		t.Fatal("expected field to be required")
	}
	if _, ok := fm.Item.Body.Value.Type.Value.(ast.TypeString); !ok {
		t.Fatalf("expected TypeString, got %T", fm.Item.Body.Value.Type.Value)
	}
}

func TestOptionalField(t *testing.T) {
	f := mustParseFile(t, `type Foo { name?: string; }`)
	decl := f.Decls[0].(*ast.TypeDecl)
	fm := decl.Body.Value.Members[0].(ast.FieldMember)
	if fm.Item.Body.Value.Required {
		t.Fatal("expected field to be optional")
	}
}

func TestFieldAsRename(t *testing.T) {
	f := mustParseFile(t, `type Foo { name: string as "display_name"; }`)
	decl := f.Decls[0].(*ast.TypeDecl)
	fm := decl.Body.Value.Members[0].(ast.FieldMember)
	if fm.Item.Body.Value.FieldAs == nil || *fm.Item.Body.Value.FieldAs != "display_name" {
		t.Fatalf("expected FieldAs display_name, got %v", fm.Item.Body.Value.FieldAs)
	}
}

func TestNestedDeclarationInsideTypeBody(t *testing.T) {
	f := mustParseFile(t, `type Foo { type Bar { x: string; } name: string; }`)
	decl := f.Decls[0].(*ast.TypeDecl)
	if len(decl.Body.Value.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(decl.Body.Value.Members))
	}
	if _, ok := decl.Body.Value.Members[0].(ast.InnerDeclMember); !ok {
		t.Fatalf("expected InnerDeclMember, got %T", decl.Body.Value.Members[0])
	}
	if _, ok := decl.Body.Value.Members[1].(ast.FieldMember); !ok {
		t.Fatalf("expected FieldMember, got %T", decl.Body.Value.Members[1])
	}
}

func TestCodeMemberInsideTypeBody(t *testing.T) {
	f := mustParseFile(t, "type Foo { java {{\n  void x() {}\n}} }")
	decl := f.Decls[0].(*ast.TypeDecl)
	if len(decl.Body.Value.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(decl.Body.Value.Members))
	}
	cm, ok := decl.Body.Value.Members[0].(ast.CodeMember)
	if !ok {
		t.Fatalf("expected CodeMember, got %T", decl.Body.Value.Members[0])
	}
	if cm.Code.Value.Context.Value != "java" {
		t.Fatalf("expected context java, got %q", cm.Code.Value.Context.Value)
	}
}

func TestTupleDeclBody(t *testing.T) {
	f := mustParseFile(t, `tuple Point { x: i32; y: i32; }`)
	decl, ok := f.Decls[0].(*ast.TupleDecl)
	if !ok {
		t.Fatalf("expected *ast.TupleDecl, got %T", f.Decls[0])
	}
	if len(decl.Body.Value.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(decl.Body.Value.Members))
	}
}

func TestInterfaceWithSubType(t *testing.T) {
	f := mustParseFile(t, `interface Base { shared: string; Sub as "sub" { extra: string; } }`)
	decl := f.Decls[0].(*ast.InterfaceDecl)
	if len(decl.Body.Value.Members) != 1 {
		t.Fatalf("expected 1 shared member, got %d", len(decl.Body.Value.Members))
	}
	if len(decl.Body.Value.SubTypes) != 1 {
		t.Fatalf("expected 1 sub-type, got %d", len(decl.Body.Value.SubTypes))
	}
	sub := decl.Body.Value.SubTypes[0]
	if sub.Body.Value.Name.Value != "Sub" {
		t.Fatalf("expected sub-type name Sub, got %q", sub.Body.Value.Name.Value)
	}
	if sub.Body.Value.Alias == nil {
		t.Fatal("expected sub-type alias")
	}
	if len(sub.Body.Value.Members) != 1 {
		t.Fatalf("expected 1 sub-type member, got %d", len(sub.Body.Value.Members))
	}
}
