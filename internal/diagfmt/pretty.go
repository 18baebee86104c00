package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/source"
)

// PrettyDiagnostics renders every diagnostic in bag against fs, in a
// rustc-like format: "path:line:col: SEVERITY[code]: message", followed by
// opts.Context lines of source around the primary span with a caret marking
// it. Colors (by severity) are applied only when opts.Color is true.
func PrettyDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		if d.Severity < opts.MinSeverity {
			continue
		}
		printDiagnostic(w, d, fs, opts)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := "<unknown>"
	if f := fs.Get(d.Primary.File); f != nil {
		path = f.FormatPath(opts.PathMode.String(), opts.BaseDir)
	}

	header := fmt.Sprintf("%s:%d:%d: %s[%s]: %s", path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message)
	if opts.Color {
		header = severityColor(d.Severity).Sprint(header)
	}
	fmt.Fprintln(w, header)

	printSourceContext(w, fs, d.Primary, opts)

	for _, n := range d.Notes {
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s (line %d)\n", n.Msg, ns.Line)
	}
	for _, fix := range d.Fixes {
		fmt.Fprintf(w, "  fix: %s\n", fix.Title)
	}
}

func printSourceContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)

	ctx := opts.Context
	if ctx < 0 {
		ctx = 0
	}
	firstLine := uint32(1)
	if int(start.Line) > ctx {
		firstLine = start.Line - uint32(ctx)
	}
	lastLine := end.Line + uint32(ctx)

	for line := firstLine; line <= lastLine; line++ {
		text := f.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", line, strings.TrimRight(text, "\r\n"))
		if line == start.Line {
			caretCol := start.Col
			if caretCol == 0 {
				caretCol = 1
			}
			caret := strings.Repeat(" ", int(caretCol-1)) + "^"
			if opts.Color {
				caret = color.New(color.FgRed).Sprint(caret)
			}
			fmt.Fprintf(w, "      | %s\n", caret)
		}
	}
}
