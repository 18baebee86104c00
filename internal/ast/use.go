package ast

import "github.com/nezdolik/reproto/internal/source"

// UseDecl is a single 'use' statement: use dotted.package "range"? (as alias)? ;?
// Range, Alias and Endl are nil when the optional part is absent.
type UseDecl struct {
	Package Located[Package]
	Range   *Located[string]
	Alias   *Located[string]
	Endl    *source.Span
}

// Package is either well-formed dotted segments or the Package::Error
// recovery sentinel produced when the 'use' line's path fails to parse.
type Package interface {
	isPackage()
}

// PackageParts is a non-empty sequence of located identifier segments.
type PackageParts struct {
	Parts []Located[string]
}

func (PackageParts) isPackage() {}

// PackageError is the recovery sentinel for a malformed 'use' path; parsing
// continues with the next top-level item rather than aborting the file.
type PackageError struct{}

func (PackageError) isPackage() {}
