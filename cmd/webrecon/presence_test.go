package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/webrecon/internal/config"
)

// TestPresenceCmd tests the presence command end to end against a local
// server standing in for the catalog sites.
func TestPresenceCmd(t *testing.T) {
	t.Run("no username is an error", func(t *testing.T) {
		_, err := runRoot(t, "presence")
		if !errors.Is(err, errNoUsername) {
			t.Errorf("got %v, expected errNoUsername", err)
		}
	})

	t.Run("reports profiles that answer 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/alice" {
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		catalog := filepath.Join(t.TempDir(), "sites.yml")
		sites := []config.SiteTemplate{
			{ID: "testsite", URLPattern: srv.URL + "/{username}"},
		}
		if err := config.WriteSiteFile(catalog, sites); err != nil {
			t.Fatal(err)
		}

		out, err := runRoot(t, "presence", "-s", catalog, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, srv.URL+"/alice") {
			t.Errorf("output missing the confirmed profile:\n%s", out)
		}
		if !strings.Contains(out, "1 profiles found") {
			t.Errorf("output missing summary line:\n%s", out)
		}
	})

	t.Run("absent username reports no profiles", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		catalog := filepath.Join(t.TempDir(), "sites.yml")
		sites := []config.SiteTemplate{
			{ID: "testsite", URLPattern: srv.URL + "/{username}"},
		}
		if err := config.WriteSiteFile(catalog, sites); err != nil {
			t.Fatal(err)
		}

		out, err := runRoot(t, "presence", "-s", catalog, "nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "No profiles found.") {
			t.Errorf("output missing empty-result line:\n%s", out)
		}
	})

	t.Run("name mode probes the derived handles", func(t *testing.T) {
		var probed []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probed = append(probed, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		catalog := filepath.Join(t.TempDir(), "sites.yml")
		sites := []config.SiteTemplate{
			{ID: "testsite", URLPattern: srv.URL + "/{username}"},
		}
		if err := config.WriteSiteFile(catalog, sites); err != nil {
			t.Fatal(err)
		}

		if _, err := runRoot(t, "presence", "-s", catalog, "-n", "1", "--name", "John Doe"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(probed) != 8 {
			t.Errorf("probed %d paths, expected the 8 derived handles: %v",
				len(probed), probed)
		}
	})

	t.Run("missing catalog file is an error", func(t *testing.T) {
		_, err := runRoot(t, "presence", "-s", "/nonexistent/sites.yml", "alice")
		if err == nil {
			t.Error("expected an error for a missing catalog file")
		}
	})
}
