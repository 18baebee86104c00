package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// FormatTokensPretty prints one line per token: index, kind, quoted text
// (if any), and the line:col-line:col range it spans.
func FormatTokensPretty(w io.Writer, toks []token.Token, fs *source.FileSet) error {
	for i, tok := range toks {
		start, end := fs.Resolve(tok.Span)

		var leading []string
		for _, tv := range tok.Leading {
			leading = append(leading, tv.Kind.String())
		}

		if _, err := fmt.Fprintf(w, "%4d: %-16s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
		if len(leading) > 0 {
			if _, err := fmt.Fprintf(w, " leading=%v", leading); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

type tokenJSON struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensJSON encodes the token stream as a JSON array, one object
// per token.
func FormatTokensJSON(w io.Writer, toks []token.Token) error {
	out := make([]tokenJSON, len(toks))
	for i, tok := range toks {
		var leading []string
		for _, tv := range tok.Leading {
			leading = append(leading, tv.Kind.String())
		}
		out[i] = tokenJSON{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span, Leading: leading}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
