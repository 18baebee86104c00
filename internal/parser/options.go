package parser

import "github.com/nezdolik/reproto/internal/diag"

const defaultMaxNestingDepth = 64

type config struct {
	reporter        diag.Reporter
	maxErrors       uint
	maxNestingDepth int
}

// Option configures a parser entry point.
type Option func(*config)

// WithReporter routes every recoverable diagnostic (and the diagnostics
// behind any fatal Error) to r. Without one, the parser still recovers
// from local errors internally, but nothing is observable except the
// final Error returned from the entry point, if any.
func WithReporter(r diag.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithMaxErrors stops recoverable-error recovery once n diagnostics have
// been reported through the Reporter; 0 (the default) means unlimited.
func WithMaxErrors(n uint) Option {
	return func(c *config) { c.maxErrors = n }
}

// WithMaxNestingDepth overrides the limit on how deeply declarations may
// nest inside one another (a top-level declaration is at depth 1); a
// declaration past the limit is reported as a syntax error. Nested array
// types are not counted. The default is 64.
func WithMaxNestingDepth(n int) Option {
	return func(c *config) { c.maxNestingDepth = n }
}

func newConfig(opts []Option) config {
	c := config{maxNestingDepth: defaultMaxNestingDepth}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c *config) enough(errCount uint) bool {
	if c.maxErrors == 0 {
		return false
	}
	return errCount >= c.maxErrors
}
