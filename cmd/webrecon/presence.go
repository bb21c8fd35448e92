package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/nao1215/webrecon/internal/model"
	"github.com/nao1215/webrecon/internal/recon"
	"github.com/spf13/cobra"
)

// errNoUsername is returned when presence is invoked without a username.
var errNoUsername = errors.New("no username specified")

// NewPresenceCmd creates the presence command.
func NewPresenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presence <username>",
		Short: "Probe a username across a catalog of sites",
		Long: `Presence resolves a username into profile URLs across the site
catalog and HEAD-probes them all in parallel. A profile counts as found
only when the probe answers HTTP 200; any other status or any transport
failure counts as not found.

The catalog comes from --sites, from .webrecon.yml in the current
directory, from sites.yml in the XDG config directory, or from the
built-in list, in that order. Run "webrecon init" to materialize the
built-in catalog for editing.

Examples:
  # Probe one username
  webrecon presence alice

  # Probe the handle patterns derived from a real name
  webrecon presence --name "John Doe"

  # Use a custom site catalog
  webrecon presence -s mysites.yml alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPresenceCmd,
	}

	cmd.Flags().StringP("sites", "s", "",
		"Site catalog file path (default: .webrecon.yml, then XDG config)")
	cmd.Flags().Bool("name", false,
		"Treat the argument as a real name and probe derived username patterns")

	addProbeFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runPresenceCmd executes the presence command.
func runPresenceCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errNoUsername
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sitesPath, err := cmd.Flags().GetString("sites")
	if err != nil {
		return err
	}
	cfg.SiteFilePath = sitesPath

	asName, err := cmd.Flags().GetBool("name")
	if err != nil {
		return err
	}

	sites, err := config.LoadSites(cfg.SiteFilePath)
	if err != nil {
		return fmt.Errorf("load site catalog: %w", err)
	}

	usernames := []string{args[0]}
	if asName {
		usernames = recon.CandidateUsernames(args[0])
		if len(usernames) == 0 {
			return errNoUsername
		}
	}

	logger := setupLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	r := recon.New(cfg, recon.WithLogger(logger))
	presence := r.ProbePresence(ctx, usernames, sites)

	writer, closeOutput, err := newReportWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Double close on the error path is harmless

	if _, err := writer.Write(model.NewPresenceReconReport(presence)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return closeOutput()
}
