package diag

import (
	"fmt"
	"sort"
)

// Bag is a bounded collector of diagnostics produced by a single phase run.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a Bag that accepts at most max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add appends d, respecting the bag's capacity. It returns false when the
// bag is already full and d was dropped. A diagnostic can never be filed
// below its own code's DefaultSeverity floor (e.g. an IOLoadFileError
// reported as SevWarning is still recorded as SevError); this keeps the
// severity recorded in the bag tied to reproto's own Lex/Syn/IO taxonomy
// regardless of what the reporting call site passed.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	if floor := d.Code.DefaultSeverity(); d.Severity < floor {
		d.Severity = floor
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether any diagnostic has SevError severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has at least SevWarning severity.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the bag's diagnostics. The returned slice aliases the bag's
// internal storage and must not be mutated by the caller.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// FamilyCounts tallies diagnostics by their code's family ("LEX", "SYN",
// "IO"), for a CLI summary line like "3 LEX, 1 SYN".
func (b *Bag) FamilyCounts() map[string]int {
	counts := make(map[string]int)
	for i := range b.items {
		fam := b.items[i].Code.Family()
		if fam == "" {
			continue
		}
		counts[fam]++
	}
	return counts
}

// AtLeast returns the bag's diagnostics whose severity is at or above min,
// in the order they were added.
func (b *Bag) AtLeast(min Severity) []Diagnostic {
	out := make([]Diagnostic, 0, len(b.items))
	for i := range b.items {
		if b.items[i].Severity >= min {
			out = append(out, b.items[i])
		}
	}
	return out
}

// Merge appends other's diagnostics, growing capacity if needed to hold them all.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (descending), then
// code (ascending), giving deterministic, reproducible output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code.String() < dj.Code.String()
	})
}

// Dedup removes diagnostics that repeat an earlier one's code and primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	kept := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.String(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
