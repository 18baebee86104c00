package ast

import "github.com/nezdolik/reproto/internal/source"

// File is the root of a parsed .reproto source file.
type File struct {
	Span       source.Span
	Comment    []string
	Attributes []Located[Attribute]
	Uses       []Located[UseDecl]
	Decls      []Decl
}

// EnumDecl, InterfaceDecl, TypeDecl, TupleDecl and ServiceDecl are the five
// concrete Decl shapes; each is an Item envelope around its body.
type (
	EnumDecl      = Item[EnumBody]
	InterfaceDecl = Item[InterfaceBody]
	TypeDecl      = Item[TypeBody]
	TupleDecl     = Item[TupleBody]
	ServiceDecl   = Item[ServiceBody]
)
