package diag

import "github.com/nezdolik/reproto/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewFromCode builds a Diagnostic at code's own DefaultSeverity, so a call
// site that has nothing special to say about severity doesn't have to keep
// it in sync with the code by hand (used by batch.ParseDir for its
// IOLoadFileError diagnostics).
func NewFromCode(code Code, primary source.Span, msg string) Diagnostic {
	return New(code.DefaultSeverity(), code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
