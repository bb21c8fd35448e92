// Package extract scans fetched page content for domain-scoped entities:
// email addresses and subdomains.
//
// Patterns are compiled once per Extractor, before any dispatch, never
// inside the scan loop. Matching runs over both the raw content and the
// visible text recovered from HTML, because markup routinely splits an
// address across inline elements in ways a single regex pass over raw
// bytes cannot see.
package extract
