package token

import "github.com/nezdolik/reproto/internal/source"

// TriviaKind classifies a piece of non-semantic source text attached to the
// next significant token.
type TriviaKind uint8

const (
	// TriviaSpace is a run of horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of one or more line breaks.
	TriviaNewline
	// TriviaLineComment is a '//' comment that is not a doc comment.
	TriviaLineComment
	// TriviaBlockComment is a '/* ... */' comment; block comments do not nest.
	TriviaBlockComment
	// TriviaDocLine is an item-level doc comment line introduced by '///'.
	TriviaDocLine
	// TriviaPackageDoc is a file-level doc comment line introduced by '//!'.
	TriviaPackageDoc
)

// Trivia is a single piece of leading trivia: whitespace, a comment, or a
// doc comment. Doc-comment Text has its marker and at most one following
// space already stripped.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocLine:
		return "DocLine"
	case TriviaPackageDoc:
		return "PackageDoc"
	default:
		return "Unknown"
	}
}
