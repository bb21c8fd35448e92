package model

import "time"

// Operation names used in ReconReport.
const (
	OperationFetch    = "fetch"
	OperationPresence = "presence"
	OperationHarvest  = "harvest"
)

// ReconReport is the aggregate output of one webrecon operation.
// Exactly one of Fetch, Presence, or Harvest is populated, selected by
// Operation.
//
// Design decision: We wrap the three aggregate shapes in a single report
// type rather than defining a writer per operation because report writers
// then implement one interface and can be composed with MultiWriter
// regardless of which operation produced the data.
type ReconReport struct {
	// Operation is one of OperationFetch, OperationPresence, OperationHarvest.
	Operation string `json:"operation"`

	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// Fetch maps each input URL to its fetch result. Populated for fetch.
	Fetch map[string]FetchResult `json:"fetch,omitempty"`

	// Presence holds the presence probing results. Populated for presence.
	Presence *PresenceReport `json:"presence,omitempty"`

	// Harvest holds the harvesting results. Populated for harvest.
	Harvest *HarvestReport `json:"harvest,omitempty"`
}

// NewFetchReport wraps bulk fetch output in a ReconReport.
func NewFetchReport(results map[string]FetchResult) *ReconReport {
	return &ReconReport{
		Operation:   OperationFetch,
		GeneratedAt: time.Now(),
		Fetch:       results,
	}
}

// NewPresenceReconReport wraps presence output in a ReconReport.
func NewPresenceReconReport(presence *PresenceReport) *ReconReport {
	return &ReconReport{
		Operation:   OperationPresence,
		GeneratedAt: time.Now(),
		Presence:    presence,
	}
}

// NewHarvestReconReport wraps harvest output in a ReconReport.
func NewHarvestReconReport(harvest *HarvestReport) *ReconReport {
	return &ReconReport{
		Operation:   OperationHarvest,
		GeneratedAt: time.Now(),
		Harvest:     harvest,
	}
}

// PresenceHit records one site where the probed username exists.
type PresenceHit struct {
	// Site is the site template key (e.g., "github").
	Site string `json:"site"`

	// URL is the resolved profile URL that answered HTTP 200.
	URL string `json:"url"`
}

// PresenceReport is the aggregate output of one presence probing run.
type PresenceReport struct {
	// Usernames are the usernames that were probed.
	Usernames []string `json:"usernames"`

	// SitesChecked is the number of site templates probed per username.
	SitesChecked int `json:"sites_checked"`

	// Hits are the profiles confirmed to exist, in arbitrary order.
	Hits []PresenceHit `json:"hits"`
}

// URLs returns the resolved URLs of all hits, in hit order.
func (p *PresenceReport) URLs() []string {
	urls := make([]string, 0, len(p.Hits))
	for _, hit := range p.Hits {
		urls = append(urls, hit.URL)
	}
	return urls
}
