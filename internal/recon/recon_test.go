package recon

import (
	"context"
	"sync"

	"github.com/nao1215/webrecon/internal/model"
)

// stubDispatcher is a test helper that returns canned results per URL
// without any network access.
type stubDispatcher struct {
	mu    sync.Mutex
	runs  int
	modes []model.ProbeMode

	// bodies maps URL to page content for fetch-body targets.
	bodies map[string]string

	// errs maps URL to a transport error description.
	errs map[string]string

	// found contains URLs whose head-only probe answers 200.
	found map[string]bool

	// catchAll is the body returned for fetch-body URLs absent from
	// bodies. catchAllErr, when set, fails every such URL instead.
	catchAll    string
	catchAllErr string
}

// Run implements the dispatcher interface.
func (s *stubDispatcher) Run(_ context.Context, targets []model.TargetDescriptor, mode model.ProbeMode) []model.JobResult {
	s.mu.Lock()
	s.runs++
	s.modes = append(s.modes, mode)
	s.mu.Unlock()

	results := make([]model.JobResult, 0, len(targets))
	for _, target := range targets {
		switch mode {
		case model.ModeHeadOnly:
			kind := model.OutcomeNotFound
			if s.found[target.URL] {
				kind = model.OutcomeFound
			}
			results = append(results, model.JobResult{Target: target, Kind: kind})
		default:
			errText, failed := s.errs[target.URL]
			if !failed && s.catchAllErr != "" {
				errText, failed = s.catchAllErr, true
			}
			if failed {
				results = append(results, model.JobResult{
					Target: target,
					Kind:   model.OutcomeTransportError,
					Err:    errText,
				})
				continue
			}
			body, ok := s.bodies[target.URL]
			if !ok {
				body = s.catchAll
			}
			results = append(results, model.JobResult{
				Target: target,
				Kind:   model.OutcomeContent,
				Body:   body,
			})
		}
	}
	return results
}

// runCount returns the number of dispatch batches issued.
func (s *stubDispatcher) runCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}
