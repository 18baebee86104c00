// Command reprotoparse is ambient dev tooling for the reproto core: a
// thin batch CLI over package parser, package lexer, and package
// pathspec. It owns every flag, environment variable, and config file
// this module reads; the core packages read none of these themselves.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nezdolik/reproto/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "reprotoparse",
	Short: "Tokenize, parse, and inspect .reproto IDL source files",
	Long:  `reprotoparse is a thin driver over the reproto lexer, parser, and path-template parser.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off); overrides .reprotoparse.toml")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics to collect per file; overrides .reprotoparse.toml")
	rootCmd.PersistentFlags().Int("max-nesting-depth", 0, "maximum recursive-descent nesting depth; overrides .reprotoparse.toml")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolvedConfig merges .reprotoparse.toml with any CLI overrides, flags
// taking precedence when set to a non-zero value.
func resolvedConfig(cmd *cobra.Command) (fileConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, err
	}
	if color, _ := cmd.Root().PersistentFlags().GetString("color"); color != "" {
		cfg.Color = color
	}
	if n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); n != 0 {
		cfg.MaxDiagnostics = n
	}
	if n, _ := cmd.Root().PersistentFlags().GetInt("max-nesting-depth"); n != 0 {
		cfg.MaxNestingDepth = n
	}
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cfg fileConfig, out *os.File) bool {
	switch cfg.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
