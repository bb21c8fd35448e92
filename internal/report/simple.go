package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/webrecon/internal/model"
)

// SimpleWriter outputs reports in a human-readable text format.
// This is the default writer for terminal display.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as plain text.
func (w *SimpleWriter) Write(report *model.ReconReport) (int, error) {
	var sb strings.Builder

	switch report.Operation {
	case model.OperationFetch:
		w.writeFetch(&sb, report.Fetch)
	case model.OperationPresence:
		w.writePresence(&sb, report.Presence)
	case model.OperationHarvest:
		w.writeHarvest(&sb, report.Harvest)
	default:
		return 0, fmt.Errorf("unknown operation %q", report.Operation)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeFetch renders bulk fetch results, URLs sorted for stable output.
func (w *SimpleWriter) writeFetch(sb *strings.Builder, results map[string]model.FetchResult) {
	urls := make([]string, 0, len(results))
	for u := range results {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	ok := 0
	for _, u := range urls {
		res := results[u]
		if res.Failed() {
			fmt.Fprintf(sb, "FAIL  %s (%s)\n", u, res.Err)
			continue
		}
		ok++
		fmt.Fprintf(sb, "OK    %s (%d bytes)\n", u, len(res.Body))
	}
	fmt.Fprintf(sb, "\n%d of %d fetched\n", ok, len(urls))
}

// writePresence renders confirmed profiles grouped under a summary line.
func (w *SimpleWriter) writePresence(sb *strings.Builder, presence *model.PresenceReport) {
	fmt.Fprintf(sb, "Probed %s across %d sites\n\n",
		strings.Join(presence.Usernames, ", "), presence.SitesChecked)

	if len(presence.Hits) == 0 {
		sb.WriteString("No profiles found.\n")
		return
	}

	for _, hit := range presence.Hits {
		fmt.Fprintf(sb, "[+] %-14s %s\n", siteDisplayName(hit.Site), hit.URL)
	}
	fmt.Fprintf(sb, "\n%d profiles found\n", len(presence.Hits))
}

// writeHarvest renders the extracted entity sets.
func (w *SimpleWriter) writeHarvest(sb *strings.Builder, harvest *model.HarvestReport) {
	fmt.Fprintf(sb, "Harvest for %s (%d pages fetched, %d failed)\n\n",
		harvest.Domain, harvest.PagesFetched, harvest.PagesFailed)

	fmt.Fprintf(sb, "Emails (%d):\n", len(harvest.Emails))
	for _, email := range harvest.Emails {
		fmt.Fprintf(sb, "  %s\n", email)
	}

	fmt.Fprintf(sb, "\nSubdomains (%d):\n", len(harvest.Subdomains))
	for _, sub := range harvest.Subdomains {
		fmt.Fprintf(sb, "  %s\n", sub)
	}
}
