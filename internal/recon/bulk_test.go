package recon

import (
	"context"
	"testing"
)

// TestBulkFetch tests the one-entry-per-URL aggregation contract.
func TestBulkFetch(t *testing.T) {
	t.Parallel()

	t.Run("maps each url to its body", func(t *testing.T) {
		t.Parallel()

		stub := &stubDispatcher{bodies: map[string]string{"https://a.test/x": "hello"}}
		r := New(nil, WithDispatcher(stub))

		got := r.BulkFetch(context.Background(), []string{"https://a.test/x"})

		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got["https://a.test/x"].Body != "hello" {
			t.Errorf("got %+v, expected body %q", got["https://a.test/x"], "hello")
		}
	})

	t.Run("one entry per url regardless of failures", func(t *testing.T) {
		t.Parallel()

		stub := &stubDispatcher{
			bodies: map[string]string{
				"https://a.test/1": "one",
				"https://a.test/3": "three",
			},
			errs: map[string]string{"https://a.test/2": "connection refused"},
		}
		r := New(nil, WithDispatcher(stub))
		urls := []string{"https://a.test/1", "https://a.test/2", "https://a.test/3"}

		got := r.BulkFetch(context.Background(), urls)

		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(got))
		}
		for _, u := range urls {
			if _, ok := got[u]; !ok {
				t.Errorf("missing entry for %q", u)
			}
		}
		if !got["https://a.test/2"].Failed() {
			t.Error("expected the failing url to carry a tagged error")
		}
		if got["https://a.test/2"].Err != "connection refused" {
			t.Errorf("unexpected error text: %q", got["https://a.test/2"].Err)
		}
		if got["https://a.test/1"].Body != "one" || got["https://a.test/3"].Body != "three" {
			t.Error("sibling results corrupted by the failing url")
		}
	})

	t.Run("empty url list returns an empty map without dispatching probes", func(t *testing.T) {
		t.Parallel()

		stub := &stubDispatcher{}
		r := New(nil, WithDispatcher(stub))

		got := r.BulkFetch(context.Background(), nil)

		if len(got) != 0 {
			t.Errorf("expected empty map, got %d entries", len(got))
		}
	})

	t.Run("repeated calls with canned responses are idempotent", func(t *testing.T) {
		t.Parallel()

		stub := &stubDispatcher{bodies: map[string]string{"https://a.test/x": "hello"}}
		r := New(nil, WithDispatcher(stub))
		urls := []string{"https://a.test/x"}

		first := r.BulkFetch(context.Background(), urls)
		second := r.BulkFetch(context.Background(), urls)

		if len(first) != len(second) || first["https://a.test/x"] != second["https://a.test/x"] {
			t.Errorf("results differ between runs: %+v vs %+v", first, second)
		}
	})
}
