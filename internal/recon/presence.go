package recon

import (
	"context"

	"github.com/nao1215/webrecon/internal/config"
	"github.com/nao1215/webrecon/internal/model"
)

// PresenceProbe checks a username against the site catalog and returns
// the resolved URLs whose HEAD probe answered HTTP 200, in arbitrary
// order. A site template that cannot be resolved (missing placeholder)
// is skipped with a warning; it never fails the batch.
func (r *Recon) PresenceProbe(ctx context.Context, username string, sites []config.SiteTemplate) []string {
	return r.probeSites(ctx, username, sites).URLs()
}

// ProbePresence runs PresenceProbe for each username and aggregates the
// hits into a PresenceReport for the report writers. The usernames are
// typically one literal username, or the candidates generated from a
// real name.
func (r *Recon) ProbePresence(ctx context.Context, usernames []string, sites []config.SiteTemplate) *model.PresenceReport {
	report := &model.PresenceReport{
		Usernames:    usernames,
		SitesChecked: len(sites),
		Hits:         make([]model.PresenceHit, 0),
	}

	for _, username := range usernames {
		partial := r.probeSites(ctx, username, sites)
		report.Hits = append(report.Hits, partial.Hits...)
	}

	r.logger.Info("presence probing complete",
		"usernames", len(usernames),
		"sites", len(sites),
		"hits", len(report.Hits),
	)
	return report
}

// probeSites resolves the catalog for one username and dispatches the
// HEAD probes.
func (r *Recon) probeSites(ctx context.Context, username string, sites []config.SiteTemplate) *model.PresenceReport {
	targets := make([]model.TargetDescriptor, 0, len(sites))
	for _, site := range sites {
		resolved, err := site.Resolve(username)
		if err != nil {
			// Fatal to this one site only, not to the batch.
			r.logger.Warn("skipping unresolvable site template",
				"site", site.ID,
				"error", err,
			)
			continue
		}
		targets = append(targets, model.TargetDescriptor{ID: site.ID, URL: resolved})
	}

	results := r.dispatcher.Run(ctx, targets, model.ModeHeadOnly)

	report := &model.PresenceReport{
		Usernames:    []string{username},
		SitesChecked: len(sites),
		Hits:         make([]model.PresenceHit, 0),
	}
	for _, res := range results {
		if res.Found() {
			report.Hits = append(report.Hits, model.PresenceHit{
				Site: res.Target.ID,
				URL:  res.Target.URL,
			})
		}
	}
	return report
}
