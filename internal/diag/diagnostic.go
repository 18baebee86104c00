package diag

import "github.com/nezdolik/reproto/internal/source"

// Note is a secondary span/message attached to a Diagnostic for extra context.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single textual replacement a fix would apply.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested, structured correction for a diagnostic.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is the central record produced by the lexer, parser, or path
// template parser.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
