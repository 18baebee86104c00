package ast

import "github.com/nezdolik/reproto/internal/source"

// Located pairs a value with the source span it was parsed from.
type Located[T any] struct {
	Value T
	Span  source.Span
}

// At wraps v with sp, the idiomatic constructor used throughout the parser.
func At[T any](v T, sp source.Span) Located[T] {
	return Located[T]{Value: v, Span: sp}
}

// Item is the envelope the grammar attaches to every declaration and
// Field/Endpoint member: doc comment lines, attributes, and the located
// body itself. Item[T] satisfies both Decl and, where it makes sense,
// TypeMember/ServiceMember through a type-specific wrapper.
type Item[Body any] struct {
	Comment    []string
	Attributes []Located[Attribute]
	Body       Located[Body]
}

// Decl is the tagged union Enum | Interface | Type | Tuple | Service.
// Every instantiation of Item[T] implements it; production code narrows
// with a type switch over the five concrete instantiations below.
type Decl interface {
	isDecl()
}

func (*Item[T]) isDecl() {}
