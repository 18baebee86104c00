// Package diagfmt renders diagnostics and tokens for cmd/reprotoparse. It
// is the only place in this module that prints anything: the core packages
// (source, token, lexer, diag, ast, parser, pathspec) only produce values.
package diagfmt
