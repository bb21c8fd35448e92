// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text output for terminal display
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub-flavored Markdown for documentation
//   - PDFWriter: printable PDF for sharing outside the terminal
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. Report data
// structures live in the model package; this package only renders them.
package report
