package ast

import "strings"

// Code is an embedded '{{ ... }}' block: the context word the block is
// tagged with (e.g. a target language name), its own attributes, and its
// normalised verbatim content.
type Code struct {
	Attributes []Located[Attribute]
	Context    Located[string]
	Content    string
}

// NormaliseCode strips the blank lines surrounding a code block's content,
// removes the largest common leading-whitespace prefix shared by every
// remaining non-blank line, and drops one trailing newline. It is
// idempotent: normalising an already-normalised string returns it
// unchanged.
func NormaliseCode(raw string) string {
	lines := strings.Split(raw, "\n")

	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return ""
	}

	prefix := commonIndent(lines)
	if prefix > 0 {
		for i, l := range lines {
			if len(l) >= prefix {
				lines[i] = l[prefix:]
			} else {
				lines[i] = ""
			}
		}
	}

	return strings.Join(lines, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func commonIndent(lines []string) int {
	best := -1
	for _, l := range lines {
		if isBlank(l) {
			continue
		}
		n := 0
		for n < len(l) && (l[n] == ' ' || l[n] == '\t') {
			n++
		}
		if best == -1 || n < best {
			best = n
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
