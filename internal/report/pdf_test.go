package report

import (
	"bytes"
	"testing"

	"github.com/nao1215/webrecon/internal/model"
)

// TestPDFWriter tests the PDF renderer.
func TestPDFWriter(t *testing.T) {
	t.Parallel()

	reports := map[string]*model.ReconReport{
		"fetch":    fetchFixture(),
		"presence": presenceFixture(),
		"harvest":  harvestFixture(),
	}

	for name, report := range reports {
		report := report
		t.Run(name+" report renders a pdf document", func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w := NewPDFWriter(&buf)

			n, err := w.Write(report)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != buf.Len() {
				t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
				t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:8])
			}
		})
	}
}
