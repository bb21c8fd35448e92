package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/webrecon/internal/model"
	"github.com/nao1215/webrecon/internal/recon"
	"github.com/spf13/cobra"
)

// errNoDomain is returned when harvest is invoked without a domain.
var errNoDomain = errors.New("no domain specified")

// NewHarvestCmd creates the harvest command.
func NewHarvestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvest <domain>",
		Short: "Harvest emails and subdomains for a domain",
		Long: `Harvest builds three search-engine dork queries for the domain,
fetches the result pages in parallel, and extracts email addresses and
subdomains from the returned content. Pages that fail at the transport
level are dropped before extraction. Output is deduplicated and sorted.

Examples:
  # Harvest a domain
  webrecon harvest example.com

  # Markdown report written to a file
  webrecon harvest --markdown -o report.md example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHarvestCmd,
	}

	cmd.Flags().String("endpoint", "",
		"Override the search engine endpoint URL")
	cmd.Flags().Int("results", 0,
		"Override the per-query search result count")

	addProbeFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runHarvestCmd executes the harvest command.
func runHarvestCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errNoDomain
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if endpoint, err := cmd.Flags().GetString("endpoint"); err != nil {
		return err
	} else if endpoint != "" {
		cfg.SearchEndpoint = endpoint
	}
	if results, err := cmd.Flags().GetInt("results"); err != nil {
		return err
	} else if results > 0 {
		cfg.ResultCount = results
	}

	logger := setupLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	r := recon.New(cfg, recon.WithLogger(logger))
	harvest := r.Harvest(ctx, args[0])

	writer, closeOutput, err := newReportWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Double close on the error path is harmless

	if _, err := writer.Write(model.NewHarvestReconReport(harvest)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return closeOutput()
}
