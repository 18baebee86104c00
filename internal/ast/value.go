package ast

// Value is the closed union of literal and reference forms the grammar
// accepts wherever a value is expected: attribute arguments, enum variant
// arguments, sub-type aliases, default values.
type Value interface {
	isValue()
}

// ValueString is a quoted-string literal with escapes already resolved.
type ValueString struct{ Value string }

func (ValueString) isValue() {}

// ValueNumber is a numeric literal, kept as an exact decimal.
type ValueNumber struct{ Value RpNumber }

func (ValueNumber) isValue() {}

// ValueIdentifier is a bare lowercase identifier used as a value, e.g. an
// attribute flag name repeated as its own value.
type ValueIdentifier struct{ Value string }

func (ValueIdentifier) isValue() {}

// ValueName is a possibly-qualified type name used as a value, e.g. an
// enum variant argument referencing another declared type.
type ValueName struct{ Value Located[Name] }

func (ValueName) isValue() {}

// ValueArray is a parenthesised '( v, v, ... )' sequence of values.
type ValueArray struct{ Values []Located[Value] }

func (ValueArray) isValue() {}
