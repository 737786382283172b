// Package cli provides the single top-level error-handling convention
// shared by all four stage binaries, so each cmd/*/main.go stays a thin
// cobra.Command wiring file (spec §6).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Run executes cmd and, on error, prints it to stderr and exits 1 —
// gotypst's own `fmt.Fprintf(os.Stderr, "error: %v\n", err); os.Exit(1)`
// convention, now shared by every stage instead of repeated in each
// binary's main.
func Run(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
