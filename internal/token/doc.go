// Package token defines lexical token kinds and trivia for the IDL grammar.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except for
//     Number/QuotedString where the lexeme is kept verbatim and decoding is
//     left to the ast/parser layer.
//   - Token.Span matches Text exactly (Start..End).
//   - Attributes are lexed as '#' (Kind: Hash) + Ident; there is no
//     per-attribute token kind.
//   - Doc comments ('///' and '//!') are represented as leading Trivia
//     (TriviaDocLine / TriviaPackageDoc) and never appear in the main token
//     stream; they attach to the next significant token.
//   - Built-in type names (any, u32, string, ...) are keywords, not
//     identifiers, because the grammar distinguishes them syntactically from
//     user-declared type references.
package token
