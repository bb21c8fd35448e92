package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/nao1215/webrecon/internal/model"
)

// PDFWriter outputs reports as a printable PDF document.
// Intended for sharing results outside the terminal; always paired with a
// file destination because the format is binary.
type PDFWriter struct {
	baseWriter
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer) *PDFWriter {
	return &PDFWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the report to PDF and writes the document bytes.
func (w *PDFWriter) Write(report *model.ReconReport) (int, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Arial", "B", 16)
	p.Cell(40, 10, "Webrecon Report")
	p.Ln(12)

	p.SetFont("Arial", "", 10)
	p.Cell(40, 8, fmt.Sprintf("Operation: %s", report.Operation))
	p.Ln(6)
	p.Cell(40, 8, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	p.Ln(10)

	switch report.Operation {
	case model.OperationFetch:
		w.writeFetch(p, report.Fetch)
	case model.OperationPresence:
		w.writePresence(p, report.Presence)
	case model.OperationHarvest:
		w.writeHarvest(p, report.Harvest)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return 0, fmt.Errorf("render pdf: %w", err)
	}
	return w.output.Write(buf.Bytes())
}

// writeFetch renders one line per URL with its fetch status.
func (w *PDFWriter) writeFetch(p *gofpdf.Fpdf, results map[string]model.FetchResult) {
	urls := make([]string, 0, len(results))
	for u := range results {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	for _, u := range urls {
		res := results[u]
		status := fmt.Sprintf("ok (%d bytes)", len(res.Body))
		if res.Failed() {
			status = "error: " + res.Err
		}
		p.Cell(40, 8, fmt.Sprintf("%s - %s", u, status))
		p.Ln(6)
	}
}

// writePresence renders the confirmed profiles.
func (w *PDFWriter) writePresence(p *gofpdf.Fpdf, presence *model.PresenceReport) {
	p.Cell(40, 8, fmt.Sprintf("Usernames: %s (%d sites checked)",
		strings.Join(presence.Usernames, ", "), presence.SitesChecked))
	p.Ln(8)

	if len(presence.Hits) == 0 {
		p.Cell(40, 8, "No profiles found.")
		p.Ln(6)
		return
	}

	for _, hit := range presence.Hits {
		p.Cell(40, 8, fmt.Sprintf("%s - %s", siteDisplayName(hit.Site), hit.URL))
		p.Ln(6)
	}
}

// writeHarvest renders the extracted entity lists.
func (w *PDFWriter) writeHarvest(p *gofpdf.Fpdf, harvest *model.HarvestReport) {
	p.Cell(40, 8, fmt.Sprintf("Domain: %s (%d pages fetched, %d failed)",
		harvest.Domain, harvest.PagesFetched, harvest.PagesFailed))
	p.Ln(10)

	p.SetFont("Arial", "B", 11)
	p.Cell(40, 8, fmt.Sprintf("Emails (%d)", len(harvest.Emails)))
	p.Ln(8)
	p.SetFont("Arial", "", 10)
	for _, email := range harvest.Emails {
		p.Cell(40, 6, email)
		p.Ln(5)
	}
	p.Ln(4)

	p.SetFont("Arial", "B", 11)
	p.Cell(40, 8, fmt.Sprintf("Subdomains (%d)", len(harvest.Subdomains)))
	p.Ln(8)
	p.SetFont("Arial", "", 10)
	for _, sub := range harvest.Subdomains {
		p.Cell(40, 6, sub)
		p.Ln(5)
	}
}
