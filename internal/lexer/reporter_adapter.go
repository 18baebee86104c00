package lexer

import "github.com/nezdolik/reproto/internal/diag"

// ReporterAdapter wraps a Bag as a diag.Reporter for use in Options or as
// a parser.WithReporter target. It is the construction point shared by
// the tokenize command, the parse command, and batch.ParseDir, so the
// returned Reporter runs through a DedupReporter first: a multi-error
// parse that recovers and resynchronizes can reach the same production
// again and re-derive an identical code/span/message triple, and every
// one of those three callers wants that collapsed before it reaches a Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that forwards deduplicated diagnostics
// into the adapter's bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})
}
