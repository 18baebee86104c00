package ast

import (
	"testing"

	"github.com/nezdolik/reproto/internal/source"
)

func TestItemInstantiationsSatisfyDecl(t *testing.T) {
	var decls []Decl

	decls = append(decls, &EnumDecl{Body: At(EnumBody{Name: At("Suit", source.Span{})}, source.Span{})})
	decls = append(decls, &InterfaceDecl{Body: At(InterfaceBody{Name: At("Shape", source.Span{})}, source.Span{})})
	decls = append(decls, &TypeDecl{Body: At(TypeBody{Name: At("Point", source.Span{})}, source.Span{})})
	decls = append(decls, &TupleDecl{Body: At(TupleBody{Name: At("Pair", source.Span{})}, source.Span{})})
	decls = append(decls, &ServiceDecl{Body: At(ServiceBody{Name: At("Greeter", source.Span{})}, source.Span{})})

	if len(decls) != 5 {
		t.Fatalf("expected 5 decls, got %d", len(decls))
	}

	for i, d := range decls {
		switch v := d.(type) {
		case *EnumDecl:
			if v.Body.Value.Name.Value != "Suit" {
				t.Errorf("decl %d: unexpected enum name %q", i, v.Body.Value.Name.Value)
			}
		case *InterfaceDecl, *TypeDecl, *TupleDecl, *ServiceDecl:
			// distinct concrete instantiations, reachable via type switch
		default:
			t.Errorf("decl %d: unhandled concrete type %T", i, v)
		}
	}
}

func TestFieldMemberSatisfiesTypeMember(t *testing.T) {
	field := &Item[Field]{
		Body: At(Field{
			Required: true,
			Name:     At("id", source.Span{}),
			Type:     At[Type](TypeString{}, source.Span{}),
		}, source.Span{}),
	}

	var m TypeMember = FieldMember{Item: field}
	fm, ok := m.(FieldMember)
	if !ok {
		t.Fatalf("expected FieldMember")
	}
	if fm.Item.Body.Value.Name.Value != "id" {
		t.Fatalf("got %q", fm.Item.Body.Value.Name.Value)
	}
}
