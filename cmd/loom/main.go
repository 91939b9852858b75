package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "A minimal UI-rendering runtime for Go",
		Long: `Loom renders declarative node trees into a live host tree and
incrementally updates it, preserving component identity and hook
state across renders.

  • Keyed reconciliation with minimal host mutations
  • Path-addressed state and effect hooks
  • Coalescing render scheduler
  • HTTP inspector with live mutation feed and snapshots`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		benchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
