package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/nao1215/webrecon/internal/log"
	"github.com/nao1215/webrecon/internal/report"
	"github.com/spf13/cobra"
)

// addProbeFlags registers the flags shared by every probing command.
func addProbeFlags(cmd *cobra.Command) {
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Per-probe request timeout")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Maximum number of concurrent probes")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with every probe")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum response body size in bytes")
}

// addReportFlags registers the report format and destination flags.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report")
	cmd.Flags().Bool("pdf", false,
		"Output PDF report (requires --output)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// buildConfig creates a Config from the shared cobra flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
		return nil, err
	}
	if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
		return nil, err
	}
	if cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.PDFReport, err = cmd.Flags().GetBool("pdf"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger builds the redacting logger and installs it as default.
func setupLogger(verbose bool) *slog.Logger {
	logger := log.NewRedactLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// signalContext returns a context cancelled on SIGINT/SIGTERM so a batch
// stops issuing new probes on interrupt.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// newReportWriter selects the report writer from the config.
// The returned closer must be called after writing; it is a no-op for
// stdout destinations.
func newReportWriter(cfg *config.Config, stdout io.Writer) (report.Writer, func() error, error) {
	dest := stdout
	closer := func() error { return nil }

	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, nil, fmt.Errorf("create report directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return nil, nil, fmt.Errorf("create report file: %w", err)
		}
		dest = f
		closer = f.Close
	}

	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(dest, report.WithPrettyPrint()), closer, nil
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(dest), closer, nil
	case cfg.PDFReport:
		return report.NewPDFWriter(dest), closer, nil
	default:
		return report.NewSimpleWriter(dest), closer, nil
	}
}
