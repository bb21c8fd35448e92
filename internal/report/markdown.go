package report

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/webrecon/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ReconReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Webrecon Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Operation", report.Operation},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	switch report.Operation {
	case model.OperationFetch:
		w.writeFetch(md, report.Fetch)
	case model.OperationPresence:
		w.writePresence(md, report.Presence)
	case model.OperationHarvest:
		w.writeHarvest(md, report.Harvest)
	}

	return len(md.String()), md.Build()
}

// writeFetch writes the per-URL fetch status table.
func (w *MarkdownWriter) writeFetch(md *markdown.Markdown, results map[string]model.FetchResult) {
	md.H2("Fetched URLs")
	md.PlainText("")

	urls := make([]string, 0, len(results))
	for u := range results {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	rows := make([][]string, 0, len(urls))
	for _, u := range urls {
		res := results[u]
		if res.Failed() {
			rows = append(rows, []string{"`" + u + "`", "error", res.Err})
			continue
		}
		rows = append(rows, []string{"`" + u + "`", "ok", strconv.Itoa(len(res.Body)) + " bytes"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"URL", "Status", "Detail"},
		Rows:   rows,
	})
}

// writePresence writes the confirmed profile table.
func (w *MarkdownWriter) writePresence(md *markdown.Markdown, presence *model.PresenceReport) {
	md.H2("Presence: " + strings.Join(presence.Usernames, ", "))
	md.PlainText("")
	md.PlainText("Sites checked: " + strconv.Itoa(presence.SitesChecked))
	md.PlainText("")

	if len(presence.Hits) == 0 {
		md.PlainText("No profiles found.")
		return
	}

	rows := make([][]string, 0, len(presence.Hits))
	for _, hit := range presence.Hits {
		rows = append(rows, []string{siteDisplayName(hit.Site), hit.URL})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Site", "Profile URL"},
		Rows:   rows,
	})
}

// writeHarvest writes the extracted entity lists.
func (w *MarkdownWriter) writeHarvest(md *markdown.Markdown, harvest *model.HarvestReport) {
	md.H2("Harvest: " + harvest.Domain)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Pages fetched", strconv.Itoa(harvest.PagesFetched)},
			{"Pages failed", strconv.Itoa(harvest.PagesFailed)},
			{"Emails", strconv.Itoa(len(harvest.Emails))},
			{"Subdomains", strconv.Itoa(len(harvest.Subdomains))},
		},
	})
	md.PlainText("")

	md.H3("Emails")
	md.BulletList(harvest.Emails...)
	md.PlainText("")

	md.H3("Subdomains")
	md.BulletList(harvest.Subdomains...)
}
