package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values match the original scraper core where applicable.
const (
	// DefaultTimeout is the per-probe request timeout. Reconnaissance
	// probes target arbitrary third-party hosts; 5 seconds bounds the
	// worst case per job without stalling a large batch on a few slow
	// servers.
	DefaultTimeout = 5 * time.Second

	// DefaultConcurrency is the number of probes running at once.
	// Unbounded fan-out risks exhausting sockets and file descriptors on
	// large target lists, so the dispatcher always runs with a bound.
	// 20 keeps a large presence batch fast while staying well below
	// typical descriptor limits.
	DefaultConcurrency = 20

	// DefaultUserAgent is a browser-like User-Agent. Search engines and
	// many social sites answer differently (or not at all) to obvious
	// non-browser agents, which would skew presence and harvest results.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB is sufficient for search result pages and profile pages while
	// preventing memory exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultSearchEndpoint is the search engine used to fetch harvest
	// result pages.
	DefaultSearchEndpoint = "https://www.google.com/search"

	// DefaultResultCount is the requested number of results per search
	// page. 50 gives enough material for extraction in a single fetch
	// per query.
	DefaultResultCount = 50

	// AppName is the application name used for XDG directory paths.
	AppName = "webrecon"
)

// Config holds all runtime options for webrecon.
// It is populated from CLI flags and passed through the application via
// dependency injection rather than global state.
type Config struct {
	// Timeout is the per-probe request timeout.
	Timeout time.Duration

	// Concurrency is the maximum number of probes running simultaneously.
	Concurrency int

	// UserAgent is the User-Agent header sent with every probe.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated.
	MaxBodySize int64

	// SearchEndpoint is the search engine base URL used by harvest.
	SearchEndpoint string

	// ResultCount is the per-query result count requested from the
	// search engine.
	ResultCount int

	// SiteFilePath is the path to the site template catalog file.
	// If empty, the tool searches for .webrecon.yml in the current
	// directory and then in the XDG config directory, falling back to
	// the built-in catalog.
	SiteFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport and PDFReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport and PDFReport.
	MarkdownReport bool

	// PDFReport enables PDF report output.
	// Mutually exclusive with JSONReport and MarkdownReport.
	// PDF output requires ReportFile because the binary format is not
	// meant for terminals.
	PDFReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (timeout, concurrency,
// user agent). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:        DefaultTimeout,
		Concurrency:    DefaultConcurrency,
		UserAgent:      DefaultUserAgent,
		MaxBodySize:    DefaultMaxBodySize,
		SearchEndpoint: DefaultSearchEndpoint,
		ResultCount:    DefaultResultCount,
	}
}

// XDGConfigDir returns the XDG config directory for webrecon.
// On Linux: ~/.config/webrecon
// On macOS: ~/Library/Application Support/webrecon
// On Windows: %APPDATA%\webrecon
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGDataDir returns the XDG data directory for webrecon.
// On Linux: ~/.local/share/webrecon
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Timeout must be positive; zero timeout would fail every probe
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	// Concurrency must be positive; zero would deadlock the dispatcher
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// MaxBodySize must be non-negative; 0 means use the default
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	// ResultCount must be positive; the search engine rejects num=0
	if c.ResultCount <= 0 {
		return ErrInvalidResultCount
	}

	// At most one report format may be selected
	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.PDFReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	// PDF is a binary format; writing it to a terminal is never useful
	if c.PDFReport && c.ReportFile == "" {
		return ErrPDFRequiresOutputFile
	}

	return nil
}
