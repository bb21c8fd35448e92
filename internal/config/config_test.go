package config

import (
	"errors"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. Changes to defaults are intentional or these fail.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Timeout is 5 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 5*time.Second {
			t.Errorf("expected Timeout to be 5s, got %v", cfg.Timeout)
		}
	})

	t.Run("default Concurrency is 20", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency != 20 {
			t.Errorf("expected Concurrency to be 20, got %d", cfg.Concurrency)
		}
	})

	t.Run("default UserAgent is browser-like", func(t *testing.T) {
		t.Parallel()
		if cfg.UserAgent == "" || cfg.UserAgent[:12] != "Mozilla/5.0 " {
			t.Errorf("expected a browser-like UserAgent, got %q", cfg.UserAgent)
		}
	})

	t.Run("default MaxBodySize is 5MB", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxBodySize != 5*1024*1024 {
			t.Errorf("expected MaxBodySize to be 5MB, got %d", cfg.MaxBodySize)
		}
	})

	t.Run("default SearchEndpoint is google search", func(t *testing.T) {
		t.Parallel()
		if cfg.SearchEndpoint != "https://www.google.com/search" {
			t.Errorf("unexpected SearchEndpoint: %q", cfg.SearchEndpoint)
		}
	})

	t.Run("default ResultCount is 50", func(t *testing.T) {
		t.Parallel()
		if cfg.ResultCount != 50 {
			t.Errorf("expected ResultCount to be 50, got %d", cfg.ResultCount)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero timeout is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Timeout = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("zero concurrency is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Concurrency = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})

	t.Run("negative max body size is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MaxBodySize = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidMaxBodySize) {
			t.Errorf("expected ErrInvalidMaxBodySize, got %v", err)
		}
	})

	t.Run("zero result count is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ResultCount = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidResultCount) {
			t.Errorf("expected ErrInvalidResultCount, got %v", err)
		}
	})

	t.Run("json and markdown conflict", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("markdown and pdf conflict", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MarkdownReport = true
		cfg.PDFReport = true
		cfg.ReportFile = "out.pdf"
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("pdf without output file is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.PDFReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrPDFRequiresOutputFile) {
			t.Errorf("expected ErrPDFRequiresOutputFile, got %v", err)
		}
	})

	t.Run("pdf with output file is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.PDFReport = true
		cfg.ReportFile = "out.pdf"
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
