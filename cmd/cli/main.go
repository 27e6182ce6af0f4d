package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tokpee-cli",
		Short:         "TokPee CLI for inspecting sales files and restock figures offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newAggregateCmd(),
		newProfileCmd(),
		newReplenishCmd(),
		newExportCmd(),
		newSampleCmd(),
	)
	return rootCmd
}
