package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadSiteFile tests loading the YAML site catalog.
func TestLoadSiteFile(t *testing.T) {
	t.Parallel()

	t.Run("loads a valid catalog", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")
		content := `sites:
  - id: github
    url: https://github.com/{username}
  - id: gitlab
    url: https://gitlab.com/{username}
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		sf, err := LoadSiteFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sf.Sites) != 2 {
			t.Fatalf("expected 2 sites, got %d", len(sf.Sites))
		}
		if sf.Sites[0].ID != "github" {
			t.Errorf("expected first site to be github, got %q", sf.Sites[0].ID)
		}
		if sf.Sites[1].URLPattern != "https://gitlab.com/{username}" {
			t.Errorf("unexpected pattern: %q", sf.Sites[1].URLPattern)
		}
	})

	t.Run("missing file returns ErrSiteFileNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadSiteFile(filepath.Join(t.TempDir(), "nope.yml"))
		if !errors.Is(err, ErrSiteFileNotFound) {
			t.Errorf("expected ErrSiteFileNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")
		if err := os.WriteFile(path, []byte("sites: [not: valid"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSiteFile(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("catalog without placeholder fails validation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")
		content := `sites:
  - id: broken
    url: https://example.com/profile
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSiteFile(path); !errors.Is(err, ErrMissingPlaceholder) {
			t.Errorf("expected ErrMissingPlaceholder, got %v", err)
		}
	})
}

// TestLoadSites tests catalog resolution with fallback.
func TestLoadSites(t *testing.T) {
	t.Parallel()

	t.Run("explicit missing path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadSites(filepath.Join(t.TempDir(), "nope.yml"))
		if !errors.Is(err, ErrSiteFileNotFound) {
			t.Errorf("expected ErrSiteFileNotFound, got %v", err)
		}
	})

	t.Run("explicit existing path is loaded", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")
		content := `sites:
  - id: github
    url: https://github.com/{username}
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		sites, err := LoadSites(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sites) != 1 || sites[0].ID != "github" {
			t.Errorf("unexpected catalog: %+v", sites)
		}
	})
}

// TestWriteSiteFile tests catalog materialization round-trips.
func TestWriteSiteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "sites.yml")
	if err := WriteSiteFile(path, DefaultSites()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sf, err := LoadSiteFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sf.Sites) != len(DefaultSites()) {
		t.Errorf("expected %d sites, got %d", len(DefaultSites()), len(sf.Sites))
	}
}
