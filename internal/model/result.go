package model

// OutcomeKind tags the result of a single probe.
//
// Design decision: We use a tagged result type rather than encoding errors
// as sentinel strings inside the content because:
//  1. Downstream consumers cannot mistake an error message for page content
//  2. Filtering failed fetches becomes a type check, not a substring check
//  3. The head-only outcomes make the "error means not found" policy explicit
type OutcomeKind int

const (
	// OutcomeContent is a fetch-body probe that captured a response body.
	OutcomeContent OutcomeKind = iota

	// OutcomeTransportError is a fetch-body probe that failed at the
	// transport level (DNS, TLS, timeout, connection refused).
	OutcomeTransportError

	// OutcomeFound is a head-only probe that returned HTTP 200.
	OutcomeFound

	// OutcomeNotFound is a head-only probe that returned any other status
	// code or failed at the transport level. Absence of the resource and
	// absence of the server are treated identically on purpose.
	OutcomeNotFound
)

// JobResult is produced exactly once per TargetDescriptor.
// The dispatcher guarantees that no job is dropped and no job reports twice.
type JobResult struct {
	// Target is the descriptor this result belongs to.
	Target TargetDescriptor

	// Kind tags which of the payload fields is meaningful.
	Kind OutcomeKind

	// Body is the response body. Set only for OutcomeContent.
	Body string

	// Err is the transport error description. Set only for
	// OutcomeTransportError.
	Err string
}

// Found reports whether a head-only probe confirmed the resource exists.
func (r JobResult) Found() bool {
	return r.Kind == OutcomeFound
}

// Failed reports whether a fetch-body probe failed at the transport level.
func (r JobResult) Failed() bool {
	return r.Kind == OutcomeTransportError
}

// FetchResult is the per-URL value returned by bulk fetch.
// Exactly one of Body or Err is meaningful; Err is empty on success.
type FetchResult struct {
	// Body is the fetched page content.
	Body string `json:"body,omitempty"`

	// Err is the transport error description when the fetch failed.
	Err string `json:"error,omitempty"`
}

// Failed reports whether the fetch failed at the transport level.
func (r FetchResult) Failed() bool {
	return r.Err != ""
}
