// Package ast defines the typed tree produced by package parser: files,
// declarations, members, types, values, and attributes, each carrying the
// source span the parser recovered them from.
//
// Recursive node kinds (Type, nested Decl) use ordinary Go pointers rather
// than an arena: a pointer already gives the compiler a finite struct
// layout for a self-referential type, so no second indirection table is
// needed to satisfy the "boxed or arena-allocated" requirement for
// recursive types. Nesting depth is bounded by the parser, not the tree
// itself (see parser.WithMaxNestingDepth).
//
// Every string-valued field may alias the original source buffer; the
// tree is only valid for as long as that buffer is kept alive by the
// caller, and nothing in this package mutates a node after it is built.
package ast
