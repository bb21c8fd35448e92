package recon

import (
	"context"

	"github.com/nao1215/webrecon/internal/model"
)

// BulkFetch fetches every URL concurrently and returns exactly one entry
// per input URL, keyed by the URL. A fetch that fails at the transport
// level yields a FetchResult with Err set; its siblings are unaffected.
// Duplicate input URLs collapse to a single entry.
func (r *Recon) BulkFetch(ctx context.Context, urls []string) map[string]model.FetchResult {
	targets := make([]model.TargetDescriptor, 0, len(urls))
	for _, u := range urls {
		targets = append(targets, model.TargetDescriptor{ID: u, URL: u})
	}

	results := r.dispatcher.Run(ctx, targets, model.ModeFetchBody)

	out := make(map[string]model.FetchResult, len(results))
	for _, res := range results {
		switch res.Kind {
		case model.OutcomeTransportError:
			out[res.Target.ID] = model.FetchResult{Err: res.Err}
		default:
			out[res.Target.ID] = model.FetchResult{Body: res.Body}
		}
	}

	r.logger.Info("bulk fetch complete", "urls", len(urls), "results", len(out))
	return out
}
