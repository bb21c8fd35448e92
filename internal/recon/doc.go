// Package recon implements the three aggregation policies built on the
// probe-and-aggregate pipeline:
//
//   - BulkFetch: URL list -> per-URL content or transport error
//   - PresenceProbe: username x site catalog -> profiles confirmed by HTTP 200
//   - Harvest: domain -> emails and subdomains extracted from search pages
//
// All three share one contract: every input yields exactly one result,
// failures are isolated per target, and a call blocks until the whole
// batch has completed. No state outlives a single call.
package recon
