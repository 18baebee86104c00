package ast

// EnumBody is the contents of an 'enum Name as Type { ... }' declaration.
type EnumBody struct {
	Name     Located[string]
	Ty       Located[Type]
	Variants []*Item[EnumVariant]
	Members  []EnumMember
}

// EnumVariant is a single enum case, optionally carrying the literal value
// it maps to (absent means the variant's own name is the value).
type EnumVariant struct {
	Name     Located[string]
	Argument *Located[Value]
}

// EnumMember is a member of an enum body other than a variant: currently
// only an embedded code block.
type EnumMember interface {
	enumMemberNode()
}

// CodeEnumMember is a '{{ ... }}' code block attached directly to an enum
// body.
type CodeEnumMember struct {
	Code Located[Code]
}

func (CodeEnumMember) enumMemberNode() {}

// InterfaceBody is the contents of an 'interface Name { ... }' declaration.
type InterfaceBody struct {
	Name     Located[string]
	Members  []TypeMember
	SubTypes []*Item[SubType]
}

// SubType is one 'Name as "alias" { ... }' variant nested inside an
// interface body.
type SubType struct {
	Name    Located[string]
	Members []TypeMember
	Alias   *Located[Value]
}

// TypeBody is the contents of a 'type Name { ... }' declaration.
type TypeBody struct {
	Name    Located[string]
	Members []TypeMember
}

// TupleBody is the contents of a 'tuple Name { ... }' declaration. Its
// shape is identical to TypeBody; the grammar keyword is what distinguishes
// the two at the Decl level.
type TupleBody struct {
	Name    Located[string]
	Members []TypeMember
}
