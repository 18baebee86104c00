// Package diag defines the diagnostic model shared by the lexer, parser and
// path-template parser.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced during lexing and parsing.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting.
//   - Model fix suggestions as structured edits a caller may choose to apply.
//
// # Scope
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; reading/writing files lives in the cmd/reprotoparse CLI
// and internal/batch.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity - Info, Warning, or Error (severity.go).
//   - Code - compact numeric identifier with stable string form (codes.go).
//   - Message - short, human-oriented text.
//   - Primary span - the source.Span the diagnostic points at.
//   - Notes - optional secondary spans/messages for extra context.
//   - Fixes - optional structured edits describing a possible correction.
//
// # Emitting diagnostics
//
// Producers use a Reporter to decouple emission from storage. The parser
// constructs a ReportBuilder via NewReportBuilder (or ReportError /
// ReportWarning / ReportInfo), chains WithNote / WithFix, then calls Emit.
// BagReporter collects diagnostics into a Bag, which supports Sort and
// Dedup for stable, reproducible output; DedupReporter filters duplicates at
// the point of emission instead.
package diag
