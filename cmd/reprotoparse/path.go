package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nezdolik/reproto/internal/pathspec"
)

var pathCmd = &cobra.Command{
	Use:   "path <template>",
	Short: "Parse a URI path template, e.g. /toy/{request}",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

func init() {
	pathCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runPath(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	spec, err := pathspec.ParsePath(args[0], []byte(args[0]))
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pathToJSON(spec))
	}

	printPathPretty(cmd, spec)
	return nil
}

func printPathPretty(cmd *cobra.Command, spec *pathspec.PathSpec) {
	if len(spec.Steps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(root path)")
		return
	}
	for i, step := range spec.Steps {
		fmt.Fprintf(cmd.OutOrStdout(), "step %d:\n", i)
		for _, part := range step.Parts {
			switch p := part.(type) {
			case pathspec.Segment:
				fmt.Fprintf(cmd.OutOrStdout(), "  segment %q\n", string(p))
			case pathspec.Variable:
				fmt.Fprintf(cmd.OutOrStdout(), "  variable %q\n", string(p))
			}
		}
	}
}

type pathPartJSON struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type pathStepJSON struct {
	Parts []pathPartJSON `json:"parts"`
}

func pathToJSON(spec *pathspec.PathSpec) []pathStepJSON {
	out := make([]pathStepJSON, len(spec.Steps))
	for i, step := range spec.Steps {
		parts := make([]pathPartJSON, len(step.Parts))
		for j, part := range step.Parts {
			switch p := part.(type) {
			case pathspec.Segment:
				parts[j] = pathPartJSON{Kind: "segment", Name: string(p)}
			case pathspec.Variable:
				parts[j] = pathPartJSON{Kind: "variable", Name: string(p)}
			}
		}
		out[i] = pathStepJSON{Parts: parts}
	}
	return out
}
