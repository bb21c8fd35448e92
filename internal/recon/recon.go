package recon

import (
	"context"
	"log/slog"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/nao1215/webrecon/internal/dispatch"
	"github.com/nao1215/webrecon/internal/model"
	"github.com/nao1215/webrecon/internal/probe"
)

// dispatcher abstracts the job dispatcher so tests can substitute a stub
// that returns canned results without network access.
type dispatcher interface {
	Run(ctx context.Context, targets []model.TargetDescriptor, mode model.ProbeMode) []model.JobResult
}

// Recon exposes the aggregation operations. It owns the dispatcher and
// prober for the lifetime of the process; individual calls carry no state
// across invocations.
type Recon struct {
	// dispatcher fans probes out over target lists.
	dispatcher dispatcher

	// cfg holds the runtime options (timeout, search endpoint, counts).
	cfg *config.Config

	// logger is used for operation-level logging.
	logger *slog.Logger
}

// Option configures a Recon.
type Option func(*Recon)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recon) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDispatcher replaces the default dispatcher. Used by tests.
func WithDispatcher(d dispatcher) Option {
	return func(r *Recon) {
		if d != nil {
			r.dispatcher = d
		}
	}
}

// New creates a Recon configured from cfg.
// A nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) *Recon {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	r := &Recon{
		cfg:    cfg,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.dispatcher == nil {
		prober := probe.New(
			probe.WithTimeout(cfg.Timeout),
			probe.WithUserAgent(cfg.UserAgent),
			probe.WithMaxBodySize(cfg.MaxBodySize),
			probe.WithLogger(r.logger),
		)
		r.dispatcher = dispatch.New(prober,
			dispatch.WithConcurrency(cfg.Concurrency),
			dispatch.WithLogger(r.logger),
		)
	}

	return r
}
