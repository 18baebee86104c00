package diagfmt

import "github.com/nezdolik/reproto/internal/diag"

// PathMode controls how a diagnostic's file path is rendered.
type PathMode uint8

const (
	// PathModeAuto prints short paths verbatim and collapses long absolute
	// paths to their basename.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures PrettyDiagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int
	PathMode PathMode
	BaseDir  string
	// MinSeverity suppresses any diagnostic below this level; the zero
	// value (SevInfo) prints everything.
	MinSeverity diag.Severity
}
