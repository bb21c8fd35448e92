package model

// HarvestReport is the aggregate output of one harvest run.
// Emails and Subdomains are deduplicated and sorted so repeated runs with
// the same input compare equal.
type HarvestReport struct {
	// Domain is the target domain the harvest was scoped to.
	Domain string `json:"domain"`

	// Queries are the search-engine queries that were issued.
	Queries []string `json:"queries"`

	// PagesFetched is the number of result pages fetched successfully.
	PagesFetched int `json:"pages_fetched"`

	// PagesFailed is the number of result pages that failed at the
	// transport level and were excluded from extraction.
	PagesFailed int `json:"pages_failed"`

	// Emails are the extracted email addresses containing the target
	// domain, lowercased, deduplicated, sorted.
	Emails []string `json:"emails"`

	// Subdomains are the extracted hostnames ending in the target domain,
	// lowercased, deduplicated, sorted.
	Subdomains []string `json:"subdomains"`
}

// NewHarvestReport creates an empty HarvestReport for the given domain.
func NewHarvestReport(domain string) *HarvestReport {
	return &HarvestReport{
		Domain:     domain,
		Emails:     make([]string, 0),
		Subdomains: make([]string, 0),
	}
}
