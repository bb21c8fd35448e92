package config

import (
	"fmt"
	"strings"
)

// PlaceholderToken marks where the username is substituted in a site URL
// pattern. The whole token is located and replaced, so patterns never
// depend on the token's literal length.
const PlaceholderToken = "{username}"

// SiteTemplate is one entry in the site catalog: a stable key and a URL
// pattern containing the username placeholder.
type SiteTemplate struct {
	// ID is the stable site key (e.g., "github"). It survives username
	// substitution and identifies the site in results and logs.
	ID string `yaml:"id"`

	// URLPattern is the profile URL with PlaceholderToken marking where
	// the username goes (e.g., "https://github.com/{username}").
	URLPattern string `yaml:"url"`
}

// Resolve substitutes the username into the URL pattern.
// Every occurrence of the placeholder is replaced; a pattern without the
// placeholder returns ErrMissingPlaceholder because probing the pattern
// verbatim would silently test the wrong URL.
func (s SiteTemplate) Resolve(username string) (string, error) {
	if !strings.Contains(s.URLPattern, PlaceholderToken) {
		return "", fmt.Errorf("site %q: %w", s.ID, ErrMissingPlaceholder)
	}
	return strings.ReplaceAll(s.URLPattern, PlaceholderToken, username), nil
}

// SiteFile represents the structure of the site catalog file.
//
// The catalog is an ordered list rather than a map so probe order is
// stable and matches the file, which makes logs predictable.
type SiteFile struct {
	// Sites is the ordered list of site templates to probe.
	Sites []SiteTemplate `yaml:"sites"`
}

// Validate checks that the catalog is usable: non-empty, unique IDs, and
// every pattern carries the placeholder.
func (f *SiteFile) Validate() error {
	if len(f.Sites) == 0 {
		return ErrNoSites
	}

	seen := make(map[string]bool, len(f.Sites))
	for _, site := range f.Sites {
		if site.ID == "" {
			return fmt.Errorf("site with pattern %q has no id", site.URLPattern)
		}
		if seen[site.ID] {
			return fmt.Errorf("duplicate site id %q", site.ID)
		}
		seen[site.ID] = true

		if !strings.Contains(site.URLPattern, PlaceholderToken) {
			return fmt.Errorf("site %q: %w", site.ID, ErrMissingPlaceholder)
		}
	}
	return nil
}

// DefaultSites returns the built-in site catalog used when no catalog file
// is found. The list covers the major platforms where a username probe is
// meaningful (profile URL answers 200 only when the account exists).
func DefaultSites() []SiteTemplate {
	return []SiteTemplate{
		{ID: "github", URLPattern: "https://github.com/{username}"},
		{ID: "gitlab", URLPattern: "https://gitlab.com/{username}"},
		{ID: "reddit", URLPattern: "https://www.reddit.com/user/{username}"},
		{ID: "twitter", URLPattern: "https://x.com/{username}"},
		{ID: "instagram", URLPattern: "https://www.instagram.com/{username}/"},
		{ID: "tiktok", URLPattern: "https://www.tiktok.com/@{username}"},
		{ID: "twitch", URLPattern: "https://www.twitch.tv/{username}"},
		{ID: "pinterest", URLPattern: "https://www.pinterest.com/{username}/"},
		{ID: "medium", URLPattern: "https://medium.com/@{username}"},
		{ID: "devto", URLPattern: "https://dev.to/{username}"},
		{ID: "keybase", URLPattern: "https://keybase.io/{username}"},
		{ID: "npm", URLPattern: "https://www.npmjs.com/~{username}"},
		{ID: "pypi", URLPattern: "https://pypi.org/user/{username}/"},
		{ID: "dockerhub", URLPattern: "https://hub.docker.com/u/{username}"},
		{ID: "hackernews", URLPattern: "https://news.ycombinator.com/user?id={username}"},
		{ID: "soundcloud", URLPattern: "https://soundcloud.com/{username}"},
		{ID: "spotify", URLPattern: "https://open.spotify.com/user/{username}"},
		{ID: "telegram", URLPattern: "https://t.me/{username}"},
		{ID: "steam", URLPattern: "https://steamcommunity.com/id/{username}"},
		{ID: "mastodon", URLPattern: "https://mastodon.social/@{username}"},
	}
}
