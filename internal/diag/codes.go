package diag

import "fmt"

// Code is a stable, namespaced diagnostic identifier. The leading digit
// selects the phase: 1xxx lexical, 2xxx syntax, 4xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical diagnostics.
	LexInfo                  Code = 1000
	LexUnknownChar            Code = 1001
	LexUnterminatedString     Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedCode       Code = 1004
	LexBadNumber              Code = 1005
	LexInvalidEscape          Code = 1006
	LexTokenTooLong           Code = 1007

	// Syntax diagnostics, general.
	SynInfo              Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynUnclosedBrace      Code = 2003
	SynUnclosedParen      Code = 2004
	SynUnclosedBracket    Code = 2005
	SynExpectSemicolon    Code = 2006
	SynExpectIdentifier   Code = 2007
	SynExpectColon        Code = 2008
	SynExpectType         Code = 2009
	SynExpectEquals       Code = 2010

	// use-declaration diagnostics.
	SynExpectIdentAfterAs Code = 2100
	SynExpectPathSegment  Code = 2101

	// package/decl-level diagnostics.
	SynUnexpectedTopLevel  Code = 2200
	SynExpectDeclBody      Code = 2201
	SynExpectRBrace        Code = 2202
	SynDuplicateMember     Code = 2203
	SynEnumExpectValue     Code = 2204
	SynTupleFieldNotAllowed Code = 2205

	// field / endpoint diagnostics.
	SynExpectFieldType      Code = 2300
	SynExpectArrow          Code = 2301
	SynExpectEndpointMethod Code = 2302

	// attribute diagnostics.
	SynExpectAttrName Code = 2400

	// path-template diagnostics.
	SynPathExpectIdentInBraces Code = 2500
	SynPathUnclosedBrace       Code = 2501
	SynPathEmptySegment        Code = 2502

	// I/O diagnostics.
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnterminatedCode:         "Unterminated code block",
	LexBadNumber:                "Malformed number literal",
	LexInvalidEscape:            "Invalid escape sequence in string literal",
	LexTokenTooLong:             "Token exceeds maximum length",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectColon:              "Expected ':'",
	SynExpectType:               "Expected a type",
	SynExpectEquals:             "Expected '='",
	SynExpectIdentAfterAs:       "Expected identifier after 'as'",
	SynExpectPathSegment:        "Expected a path segment after '::'",
	SynUnexpectedTopLevel:       "Unexpected top-level item",
	SynExpectDeclBody:           "Expected '{' to start a declaration body",
	SynExpectRBrace:             "Expected '}'",
	SynDuplicateMember:          "Duplicate member name",
	SynEnumExpectValue:          "Expected an enum value after '='",
	SynTupleFieldNotAllowed:     "Optional field in a tuple body",
	SynExpectFieldType:          "Expected a field type after ':'",
	SynExpectArrow:              "Expected '->' before an endpoint's response type",
	SynExpectEndpointMethod:     "Expected an endpoint name",
	SynExpectAttrName:           "Expected an attribute name after '#'",
	SynPathExpectIdentInBraces:  "Expected an identifier inside '{ }'",
	SynPathUnclosedBrace:        "Unclosed '{' in path template",
	SynPathEmptySegment:         "Empty path segment",
	IOLoadFileError:             "I/O error while loading a source file",
}

// Family returns the short namespace a code belongs to ("LEX", "SYN",
// "IO", or "" for UnknownCode), matching the prefix ID produces.
func (c Code) Family() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return "LEX"
	case ic >= 2000 && ic < 3000:
		return "SYN"
	case ic >= 4000 && ic < 5000:
		return "IO"
	}
	return ""
}

// DefaultSeverity is the severity a code is reported at absent any other
// instruction: the *.Info members are informational, SynExpectSemicolon
// and SynTupleFieldNotAllowed are deliberately soft (a missing trailing
// ';' and an unusual-but-legal tuple field are recoverable style issues,
// not malformed input), and every other lexical, syntax, or I/O code is
// an error. Bag.Add uses this as a floor: a diagnostic can't be filed
// under its own code at a lower severity than the code's family implies.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case LexInfo, SynInfo:
		return SevInfo
	case SynTupleFieldNotAllowed:
		return SevInfo
	case SynExpectSemicolon:
		return SevWarning
	}
	if c.Family() == "" {
		return SevInfo
	}
	return SevError
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
