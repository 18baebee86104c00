package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a byte sequence the lexer could not classify.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Identifier is a lowercase-leading name: field, member and package names.
	Identifier
	// TypeIdentifier is an uppercase-leading name: a declared or referenced type.
	TypeIdentifier

	// KwUse represents the 'use' keyword, introducing a UseDecl.
	KwUse
	// KwAs represents the 'as' keyword, renaming a use-path or an enum value alias.
	KwAs
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwType represents the 'type' keyword.
	KwType
	// KwInterface represents the 'interface' keyword.
	KwInterface
	// KwTuple represents the 'tuple' keyword.
	KwTuple
	// KwService represents the 'service' keyword.
	KwService
	// KwStream represents the 'stream' keyword, marking a streaming endpoint channel.
	KwStream

	// KwAny represents the 'any' built-in type.
	KwAny
	// KwFloat represents the 'float' built-in type.
	KwFloat
	// KwDouble represents the 'double' built-in type.
	KwDouble
	// KwU32 represents the 'u32' built-in type.
	KwU32
	// KwU64 represents the 'u64' built-in type.
	KwU64
	// KwI32 represents the 'i32' built-in type.
	KwI32
	// KwI64 represents the 'i64' built-in type.
	KwI64
	// KwBoolean represents the 'boolean' built-in type.
	KwBoolean
	// KwString represents the 'string' built-in type.
	KwString
	// KwDatetime represents the 'datetime' built-in type.
	KwDatetime
	// KwBytes represents the 'bytes' built-in type.
	KwBytes

	// Number is a numeric literal lexeme, preserved verbatim for exact decimal parsing.
	Number
	// QuotedString is a double-quoted string literal, pre-escape-decoding.
	QuotedString
	// CodeContent is the raw, unprocessed text between a code block's '{{' and '}}'.
	CodeContent

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// LDoubleBrace represents the code block opener '{{'.
	LDoubleBrace
	// RDoubleBrace represents the code block closer '}}'.
	RDoubleBrace
	// Semicolon represents ';'.
	Semicolon
	// Colon represents ':'.
	Colon
	// ColonColon represents '::'.
	ColonColon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Question represents '?', marking an optional field or type.
	Question
	// Hash represents '#', introducing an attribute.
	Hash
	// Bang represents '!', completing the file-level attribute opener '#!'.
	Bang
	// Arrow represents '->', separating an endpoint's request from its response.
	Arrow
	// Eq represents '=', assigning an enum value or a field's default.
	Eq
)

var kindNames = map[Kind]string{
	Invalid: "Invalid", EOF: "EOF",
	Identifier: "Identifier", TypeIdentifier: "TypeIdentifier",
	KwUse: "use", KwAs: "as", KwEnum: "enum", KwType: "type",
	KwInterface: "interface", KwTuple: "tuple", KwService: "service", KwStream: "stream",
	KwAny: "any", KwFloat: "float", KwDouble: "double", KwU32: "u32", KwU64: "u64",
	KwI32: "i32", KwI64: "i64", KwBoolean: "boolean", KwString: "string",
	KwDatetime: "datetime", KwBytes: "bytes",
	Number: "Number", QuotedString: "QuotedString", CodeContent: "CodeContent",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", LDoubleBrace: "{{", RDoubleBrace: "}}",
	Semicolon: ";", Colon: ":", ColonColon: "::", Comma: ",", Dot: ".",
	Question: "?", Hash: "#", Bang: "!", Arrow: "->", Eq: "=",
}

// String renders a human-readable name for k, used in diagnostics and
// token dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
