package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for webrecon.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webrecon",
		Short: "Concurrent reconnaissance data gathering",
		Long: `Webrecon issues many independent network probes concurrently and
aggregates the results: bulk page fetching, username presence probing
across a site catalog, and email/subdomain harvesting from search-engine
result pages.

Every probe is isolated: one failing target never aborts its siblings.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewPresenceCmd())
	cmd.AddCommand(NewHarvestCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
