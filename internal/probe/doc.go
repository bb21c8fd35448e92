// Package probe implements the probe executor: a single HTTP request and
// response cycle evaluating one target.
//
// A probe never returns a Go error. Transport failures are folded into the
// JobResult as tagged outcomes so the dispatcher can treat every job
// identically and one failing probe can never abort a batch.
package probe
