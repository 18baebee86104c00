package parser_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/ast"
)

func TestAttributeWithTrailingComma(t *testing.T) {
	f := mustParseFile(t, `#[foo(a, b,)] type X { }`)
	decl := f.Decls[0].(*ast.TypeDecl)
	if len(decl.Attributes) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(decl.Attributes))
	}
	list, ok := decl.Attributes[0].Value.(ast.AttributeList)
	if !ok {
		t.Fatalf("expected AttributeList, got %T", decl.Attributes[0].Value)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items despite a trailing comma, got %d", len(list.Items))
	}
}

func TestAttributeNameValueItem(t *testing.T) {
	f := mustParseFile(t, `#[foo(bar = "baz")] type X { }`)
	decl := f.Decls[0].(*ast.TypeDecl)
	list := decl.Attributes[0].Value.(ast.AttributeList)
	item, ok := list.Items[0].Value.(ast.AttrItemNameValue)
	if !ok {
		t.Fatalf("expected AttrItemNameValue, got %T", list.Items[0].Value)
	}
	if item.Name.Value != "bar" {
		t.Fatalf("expected name bar, got %q", item.Name.Value)
	}
	str, ok := item.Value.Value.(ast.ValueString)
	if !ok || str.Value != "baz" {
		t.Fatalf("expected ValueString(baz), got %#v", item.Value.Value)
	}
}
