package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/nao1215/webrecon/internal/model"
	"golang.org/x/sync/errgroup"
)

// Prober performs a single probe. *probe.Prober satisfies this interface;
// tests substitute a stub.
type Prober interface {
	Do(ctx context.Context, target model.TargetDescriptor, mode model.ProbeMode) model.JobResult
}

// Dispatcher fans out probes over a target list with bounded concurrency.
//
// Design decision: We bound the fan-out rather than spawning one goroutine
// per target unconditionally because an unbounded batch over a large
// target list exhausts sockets and file descriptors. errgroup.SetLimit
// preserves the "independent job, isolated failure, synchronous batch"
// contract while capping concurrent connections.
type Dispatcher struct {
	// prober executes individual probes.
	prober Prober

	// concurrency is the maximum number of probes running at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConcurrency sets the maximum number of concurrent probes.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Dispatcher running probes through the given Prober.
func New(prober Prober, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		prober:      prober,
		concurrency: config.DefaultConcurrency,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run probes every target concurrently and blocks until all jobs finish.
//
// Invariant: the returned slice has exactly one JobResult per target, at
// the target's index. Results are written into pre-allocated slots, so no
// job can be dropped and no job can report twice. An empty target list
// returns immediately without any network activity.
//
// Cancellation: a cancelled context stops new jobs from issuing requests;
// their slots are filled with the mode's failure outcome so the invariant
// holds even for an aborted batch.
func (d *Dispatcher) Run(ctx context.Context, targets []model.TargetDescriptor, mode model.ProbeMode) []model.JobResult {
	results := make([]model.JobResult, len(targets))
	if len(targets) == 0 {
		return results
	}

	d.logger.Debug("starting dispatch batch",
		"targets", len(targets),
		"mode", mode.String(),
		"concurrency", d.concurrency,
	)
	startTime := time.Now()

	g := new(errgroup.Group)
	g.SetLimit(d.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			// A batch cancelled mid-flight still owes a result for
			// every slot.
			select {
			case <-ctx.Done():
				results[i] = cancelledResult(target, mode, ctx.Err())
				return nil
			default:
			}

			// Each goroutine writes a distinct slot, so no mutex is
			// needed around the results slice.
			results[i] = d.prober.Do(ctx, target, mode)
			return nil
		})
	}

	// Jobs never return errors; failures live inside their JobResult.
	_ = g.Wait() //nolint:errcheck

	d.logger.Debug("dispatch batch complete",
		"targets", len(targets),
		"elapsed", time.Since(startTime),
	)

	return results
}

// cancelledResult fills a slot for a job that never ran because the batch
// context was cancelled. The outcome follows the mode's failure policy:
// head-only probes report NotFound, fetch probes report a transport error.
func cancelledResult(target model.TargetDescriptor, mode model.ProbeMode, cause error) model.JobResult {
	if mode == model.ModeHeadOnly {
		return model.JobResult{Target: target, Kind: model.OutcomeNotFound}
	}
	return model.JobResult{
		Target: target,
		Kind:   model.OutcomeTransportError,
		Err:    cause.Error(),
	}
}
