package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/nao1215/webrecon/internal/model"
)

// Prober performs single network probes against targets.
//
// Design decision: We use a struct holding the http.Client rather than
// passing the client on each call because:
//  1. Client configuration (redirect policy, pooling) should be consistent
//     across all probes of a batch
//  2. Connection reuse works better with a shared client
//  3. Easier to test with a stub server or custom transport
type Prober struct {
	// client is the shared HTTP client. Redirect following is the
	// client's default behavior unless disabled via option.
	client *http.Client

	// userAgent is sent with every request. Defaults to a browser-like
	// string because search engines and social sites gate on it.
	userAgent string

	// maxBodySize limits the response body size to prevent memory
	// exhaustion from unexpectedly large responses.
	maxBodySize int64

	// timeout bounds each individual probe.
	timeout time.Duration

	// logger receives per-probe debug records.
	logger *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithHTTPClient replaces the default HTTP client.
// Useful for tests and for custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		if client != nil {
			p.client = client
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		if ua != "" {
			p.userAgent = ua
		}
	}
}

// WithTimeout sets the per-probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(p *Prober) {
		if size > 0 {
			p.maxBodySize = size
		}
	}
}

// WithFollowRedirects controls redirect following behavior.
// Redirects are followed by default.
func WithFollowRedirects(follow bool) Option {
	return func(p *Prober) {
		if follow {
			p.client.CheckRedirect = nil
			return
		}
		p.client.CheckRedirect = func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
}

// WithLogger sets a custom logger for per-probe debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Prober with default settings.
func New(opts ...Option) *Prober {
	p := &Prober{
		client:      &http.Client{},
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
		timeout:     config.DefaultTimeout,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Do performs one probe of the target in the given mode and returns its
// JobResult. It never returns a Go error; transport failures become
// tagged outcomes.
func (p *Prober) Do(ctx context.Context, target model.TargetDescriptor, mode model.ProbeMode) model.JobResult {
	switch mode {
	case model.ModeHeadOnly:
		return p.head(ctx, target)
	default:
		return p.fetch(ctx, target)
	}
}

// fetch issues a GET and captures the response body.
// Transport success yields OutcomeContent even for non-2xx status codes;
// an error page is still content the caller may want to scan.
func (p *Prober) fetch(ctx context.Context, target model.TargetDescriptor) model.JobResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return transportError(target, err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("fetch probe failed", "url", target.URL, "error", err)
		return transportError(target, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Close error is irrelevant after read

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodySize))
	if err != nil {
		// A body cut short mid-transfer is a transport failure, not
		// partial content. Reporting the fragment as content would
		// poison extraction downstream.
		p.logger.Debug("fetch body read failed", "url", target.URL, "error", err)
		return transportError(target, err)
	}

	p.logger.Debug("fetch probe completed",
		"url", target.URL,
		"status", resp.StatusCode,
		"body_size", len(body),
	)

	return model.JobResult{
		Target: target,
		Kind:   model.OutcomeContent,
		Body:   string(body),
	}
}

// head issues a HEAD and maps the result to Found/NotFound.
// Any transport error is NotFound: probing absence-of-resource and
// absence-of-server are treated identically.
func (p *Prober) head(ctx context.Context, target model.TargetDescriptor) model.JobResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target.URL, nil)
	if err != nil {
		return notFound(target)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("head probe failed", "url", target.URL, "error", err)
		return notFound(target)
	}
	defer resp.Body.Close() //nolint:errcheck // HEAD responses carry no body

	p.logger.Debug("head probe completed", "url", target.URL, "status", resp.StatusCode)

	// Exactly 200 means the resource exists. Redirection chains have
	// already been followed by the client, so a 3xx here is a site that
	// bounces unknown users somewhere else.
	if resp.StatusCode == http.StatusOK {
		return model.JobResult{Target: target, Kind: model.OutcomeFound}
	}
	return notFound(target)
}

// setHeaders applies the standard request headers to every probe.
func (p *Prober) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}

// transportError builds a failed fetch-body result.
func transportError(target model.TargetDescriptor, err error) model.JobResult {
	return model.JobResult{
		Target: target,
		Kind:   model.OutcomeTransportError,
		Err:    err.Error(),
	}
}

// notFound builds a negative head-only result.
func notFound(target model.TargetDescriptor) model.JobResult {
	return model.JobResult{Target: target, Kind: model.OutcomeNotFound}
}
