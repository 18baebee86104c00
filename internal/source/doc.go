// Package source holds the file and byte-span model shared by the lexer,
// parser and diagnostics. A Span never carries a pointer to its file; it is
// resolved against a FileSet on demand, which keeps AST nodes small and lets
// independent FileSets be parsed concurrently with no shared mutable state.
package source
