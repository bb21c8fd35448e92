package main

import (
	"fmt"
	"os"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in site catalog to a file",
		Long: `Init materializes the built-in site catalog as a YAML file so it
can be edited: add sites, remove sites, or change URL patterns. Every
pattern must contain the {username} placeholder.

By default the catalog is written to .webrecon.yml in the current
directory, where presence probing picks it up automatically.

Examples:
  # Write .webrecon.yml in the current directory
  webrecon init

  # Write to the XDG config location instead
  webrecon init -o ~/.config/webrecon/sites.yml`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultSiteFile,
		"Destination path for the site catalog")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing catalog file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.WriteSiteFile(path, config.DefaultSites()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote site catalog to %s\n", path)
	return nil
}
