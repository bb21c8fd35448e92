// Package dispatch implements the job dispatcher: a bounded concurrent
// fan-out of probes over a target list.
//
// A dispatch batch is synchronous from the caller's perspective: Run
// returns only once every target has produced exactly one JobResult.
// Jobs are independent, share no mutable state, and one job's failure
// never aborts or delays its siblings.
package dispatch
