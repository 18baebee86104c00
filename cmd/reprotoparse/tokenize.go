package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nezdolik/reproto/internal/cache"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/diagfmt"
	"github.com/nezdolik/reproto/internal/lexer"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.reproto>",
	Short: "Tokenize a .reproto source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-cache", false, "skip the on-disk token cache")
	tokenizeCmd.Flags().String("min-severity", "info", "suppress diagnostics below this level (info|warning|error)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := resolvedConfig(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	minSev, err := minSeverity(cmd)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path is a CLI argument
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fs := source.NewFileSet()
	fid := fs.Add(path, content, 0)
	file := fs.Get(fid)

	var toks []token.Token
	var tc *cache.TokenCache
	key := cache.HashContent(content)
	if !noCache {
		if dir, err := tokenCacheDir(); err == nil {
			if c, err := cache.Open(dir); err == nil {
				tc = c
				if cached, ok, _ := c.Get(key); ok {
					toks = reassociate(cached, fid)
				}
			}
		}
	}

	bag := diag.NewBag(cfg.MaxDiagnostics)
	if toks == nil {
		lx := lexer.New(file, lexer.Options{Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter()})
		for {
			tok := lx.Next()
			toks = append(toks, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
		if tc != nil {
			_ = tc.Put(key, toks)
		}
	}

	if bag.Len() > 0 {
		diagfmt.PrettyDiagnostics(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: useColor(cfg, os.Stderr), MinSeverity: minSev})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks, fs)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}

// reassociate rewrites a cached token stream's zero FileID to fid, since a
// TokenCache entry is content-addressed and carries no FileSet of its own.
func reassociate(toks []token.Token, fid source.FileID) []token.Token {
	out := make([]token.Token, len(toks))
	for i, t := range toks {
		t.Span.File = fid
		out[i] = t
	}
	return out
}

func tokenCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = home + "/.cache"
	}
	return base + "/reprotoparse/tokens", nil
}
