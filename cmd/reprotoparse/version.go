package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nezdolik/reproto/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show reprotoparse build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Version
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reprotoparse %s\n", v)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
