package recon

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nao1215/webrecon/internal/extract"
	"github.com/nao1215/webrecon/internal/model"
)

// Harvest collects emails and subdomains scoped to the domain by fetching
// search-engine result pages for three dork queries and scanning the
// returned content. Pages that failed at the transport level are dropped
// before extraction. The returned sets are lowercased, deduplicated, and
// sorted.
func (r *Recon) Harvest(ctx context.Context, domain string) *model.HarvestReport {
	report := model.NewHarvestReport(domain)
	report.Queries = harvestQueries(domain)

	// Patterns are compiled here, once, before any page is fetched.
	extractor := extract.New(domain)

	urls := make([]string, 0, len(report.Queries))
	for _, query := range report.Queries {
		urls = append(urls, r.searchURL(query))
	}

	fetched := r.BulkFetch(ctx, urls)

	emails := extract.NewSet()
	subdomains := extract.NewSet()
	for _, page := range fetched {
		if page.Failed() {
			report.PagesFailed++
			continue
		}
		report.PagesFetched++

		// Scan the raw markup and the recovered visible text. The raw
		// pass catches addresses inside attributes (mailto: links);
		// the text pass catches addresses that markup splits across
		// inline elements.
		for _, text := range []string{page.Body, extract.VisibleText(page.Body)} {
			emails.Add(extractor.Emails(text)...)
			subdomains.Add(extractor.Subdomains(text)...)
		}
	}

	report.Emails = emails.Sorted()
	report.Subdomains = subdomains.Sorted()

	r.logger.Info("harvest complete",
		"domain", domain,
		"pages_fetched", report.PagesFetched,
		"pages_failed", report.PagesFailed,
		"emails", len(report.Emails),
		"subdomains", len(report.Subdomains),
	)
	return report
}

// harvestQueries builds the three dork queries for a domain:
// organization mentions on google.com, plain email mentions, and the
// subdomain wildcard.
func harvestQueries(domain string) []string {
	return []string{
		fmt.Sprintf(`site:google.com "@%s"`, domain),
		fmt.Sprintf(`"@%s"`, domain),
		"site:*." + domain,
	}
}

// searchURL wraps a dork query as a single search-engine URL with the
// configured result count.
func (r *Recon) searchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("num", strconv.Itoa(r.cfg.ResultCount))
	return r.cfg.SearchEndpoint + "?" + params.Encode()
}
