package config

import "errors"

// Configuration and catalog errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate probe failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the concurrency limit is not
	// positive. A limit of zero would mean no probes run at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidResultCount is returned when the search result count is
	// not positive.
	ErrInvalidResultCount = errors.New("invalid result count: must be positive")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, and --pdf is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: choose at most one of --json, --markdown, --pdf")

	// ErrPDFRequiresOutputFile is returned when --pdf is used without
	// --output. PDF is a binary format and is never written to stdout.
	ErrPDFRequiresOutputFile = errors.New("pdf report requires --output")

	// ErrNoSites is returned when a site catalog contains no entries.
	ErrNoSites = errors.New("site catalog is empty")

	// ErrMissingPlaceholder is returned when a site URL pattern does not
	// contain the {username} placeholder and therefore cannot be resolved.
	ErrMissingPlaceholder = errors.New("url pattern does not contain the {username} placeholder")

	// ErrSiteFileNotFound is returned when the site catalog file does not
	// exist. Callers decide whether to fall back to the built-in catalog
	// based on whether the path was explicitly specified by the user.
	ErrSiteFileNotFound = errors.New("site catalog file not found")
)
