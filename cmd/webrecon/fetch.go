package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/webrecon/internal/model"
	"github.com/nao1215/webrecon/internal/recon"
	"github.com/spf13/cobra"
)

// errNoURLs is returned when fetch is invoked without any URL argument.
var errNoURLs = errors.New("no urls specified")

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url> [url...]",
		Short: "Fetch a list of URLs concurrently",
		Long: `Fetch retrieves every given URL in parallel and reports one result
per URL: the page content size on success, or the transport error on
failure. A failing URL never affects its siblings.

Examples:
  # Fetch three pages at once
  webrecon fetch https://example.com https://example.org https://example.net

  # JSON report including page bodies
  webrecon fetch --json https://example.com

  # Bound the fan-out for a large list
  webrecon fetch -n 5 $(cat urls.txt)`,
		Args: cobra.ArbitraryArgs,
		RunE: runFetchCmd,
	}

	addProbeFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errNoURLs
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	r := recon.New(cfg, recon.WithLogger(logger))
	results := r.BulkFetch(ctx, args)

	writer, closeOutput, err := newReportWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Double close on the error path is harmless

	if _, err := writer.Write(model.NewFetchReport(results)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return closeOutput()
}
