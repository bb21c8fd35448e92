package report

import (
	"bytes"
	"strings"
	"testing"
)

// TestMarkdownWriter tests the markdown renderer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("fetch report renders a status table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(fetchFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Webrecon Report",
			"## Fetched URLs",
			"`https://a.test/ok`",
			"5 bytes",
			"connection refused",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("presence report renders a profile table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(presenceFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"## Presence: alice",
			"Sites checked: 20",
			"Dev To",
			"https://github.com/alice",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("harvest report renders entity lists", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(harvestFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"## Harvest: example.com",
			"### Emails",
			"- alice@example.com",
			"### Subdomains",
			"- mail.example.com",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}
