package model

// ProbeMode selects how the probe executor evaluates a target.
type ProbeMode int

const (
	// ModeFetchBody issues an HTTP GET and captures the full response body.
	// Used by bulk fetch and harvest.
	ModeFetchBody ProbeMode = iota

	// ModeHeadOnly issues an HTTP HEAD and inspects only the status code.
	// Used by presence probing where the body is irrelevant and skipping
	// the transfer is much faster.
	ModeHeadOnly
)

// String returns the human-readable mode name for logging.
func (m ProbeMode) String() string {
	switch m {
	case ModeFetchBody:
		return "fetch-body"
	case ModeHeadOnly:
		return "head-only"
	default:
		return "unknown"
	}
}

// TargetDescriptor identifies one unit of probe work.
//
// Design decision: We use a single struct with an ID field rather than a
// sum type per aggregator because:
//  1. The dispatcher treats every target identically
//  2. ID carries the caller's stable identity (the raw URL for bulk fetch,
//     the site template key for presence probes)
//  3. It keeps the dispatcher free of aggregator-specific knowledge
type TargetDescriptor struct {
	// ID is the stable identity reported back in the JobResult.
	// For bulk fetch it equals URL. For presence probes it is the site
	// template key, which stays stable even though the resolved URL is
	// username-specific.
	ID string

	// URL is the fully resolved URL to probe.
	URL string
}
