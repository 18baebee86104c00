// Package pathspec parses URI path templates used inside HTTP-routing
// attributes on service endpoints, e.g. "/toy/{request}". It is a
// self-contained sibling to the main lexer/parser pair: smaller grammar,
// no doc comments or attributes, no dependency on internal/source or
// internal/token.
package pathspec
