package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSiteFile is the default site catalog file name.
const DefaultSiteFile = ".webrecon.yml"

// LoadSiteFile loads the site template catalog from a YAML file.
// If the file does not exist, it returns ErrSiteFileNotFound so callers
// can decide whether to fall back to the built-in catalog.
func LoadSiteFile(path string) (*SiteFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSiteFileNotFound
		}
		return nil, err
	}

	var sf SiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse site catalog %s: %w", path, err)
	}

	if err := sf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site catalog %s: %w", path, err)
	}

	return &sf, nil
}

// FindSiteFile searches for the site catalog file in the following order:
//  1. If explicitPath is specified, use it directly
//  2. Look for .webrecon.yml in the current directory
//  3. Look for sites.yml in the XDG config directory
//
// Returns the path to the catalog file if found, or empty string if not found.
func FindSiteFile(explicitPath string) string {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err == nil {
			return explicitPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdFile := filepath.Join(cwd, DefaultSiteFile)
		if _, err := os.Stat(cwdFile); err == nil {
			return cwdFile
		}
	}

	xdgFile := filepath.Join(XDGConfigDir(), "sites.yml")
	if _, err := os.Stat(xdgFile); err == nil {
		return xdgFile
	}

	return ""
}

// LoadSites resolves the site catalog for a presence run.
// It loads the file at explicitPath when given, otherwise searches the
// default locations, and falls back to the built-in catalog when no file
// exists. A broken catalog file is always an error, never silently
// replaced by the defaults.
func LoadSites(explicitPath string) ([]SiteTemplate, error) {
	path := FindSiteFile(explicitPath)
	if path == "" {
		if explicitPath != "" {
			return nil, fmt.Errorf("%w: %s", ErrSiteFileNotFound, explicitPath)
		}
		return DefaultSites(), nil
	}

	sf, err := LoadSiteFile(path)
	if err != nil {
		return nil, err
	}
	return sf.Sites, nil
}

// WriteSiteFile writes a site catalog to the given path in YAML format.
// Used by "webrecon init" to materialize the built-in catalog so users
// can edit it.
func WriteSiteFile(path string, sites []SiteTemplate) error {
	data, err := yaml.Marshal(&SiteFile{Sites: sites})
	if err != nil {
		return fmt.Errorf("marshal site catalog: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write site catalog %s: %w", path, err)
	}
	return nil
}
