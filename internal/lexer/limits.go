package lexer

// maxTokenLength bounds the byte length of a single identifier, number,
// string, or code-content token. Real IDL source never needs a token this
// long; the cap exists to fail fast on pathological or malicious input
// instead of building an unbounded in-memory lexeme.
const maxTokenLength = 1 << 16
