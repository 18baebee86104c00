package token

var keywords = map[string]Kind{
	"use":       KwUse,
	"as":        KwAs,
	"enum":      KwEnum,
	"type":      KwType,
	"interface": KwInterface,
	"tuple":     KwTuple,
	"service":   KwService,
	"stream":    KwStream,
	"any":       KwAny,
	"float":     KwFloat,
	"double":    KwDouble,
	"u32":       KwU32,
	"u64":       KwU64,
	"i32":       KwI32,
	"i64":       KwI64,
	"boolean":   KwBoolean,
	"string":    KwString,
	"datetime":  KwDatetime,
	"bytes":     KwBytes,
}

// LookupKeyword returns the keyword Kind for ident, if any. Keywords are
// case-sensitive lowercase; an identifier that merely matches a keyword in a
// different case is still a plain Identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
