package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/webrecon/internal/config"
)

// runInit executes the init command with the given args and returns its
// combined output.
func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewInitCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestInitCmd tests site catalog materialization.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes a loadable catalog", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")

		out, err := runInit(t, "-o", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, path) {
			t.Errorf("output does not mention the destination:\n%s", out)
		}

		sf, err := config.LoadSiteFile(path)
		if err != nil {
			t.Fatalf("written catalog does not load: %v", err)
		}
		if len(sf.Sites) != len(config.DefaultSites()) {
			t.Errorf("catalog has %d sites, expected %d",
				len(sf.Sites), len(config.DefaultSites()))
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")
		if err := os.WriteFile(path, []byte("sites: []\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := runInit(t, "-o", path); err == nil {
			t.Fatal("expected an error for an existing file")
		}

		// The original content must survive.
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "sites: []\n" {
			t.Error("existing file was overwritten")
		}
	})

	t.Run("force overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yml")
		if err := os.WriteFile(path, []byte("sites: []\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := runInit(t, "-o", path, "--force"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sf, err := config.LoadSiteFile(path)
		if err != nil {
			t.Fatalf("written catalog does not load: %v", err)
		}
		if len(sf.Sites) == 0 {
			t.Error("force write left an empty catalog")
		}
	})
}
