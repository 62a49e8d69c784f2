// Package goquery implements HTML extraction for vbpl.vn portal pages:
// the full-text container, the document metadata regions and the
// relationship diagram.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ndtrung/vbpl"
)

// contentSelector is the portal's full-text container.
const contentSelector = "div.toanvancontent"

// Ensure Extractor implements vbpl.Extractor at compile time.
var _ vbpl.Extractor = (*Extractor)(nil)

// Extractor extracts the document body from a full-text portal page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements vbpl.Extractor. Returns ENOTFOUND when the page
// has no full-text container or the container is empty; some documents
// are published as scanned attachments without inline text.
func (e *Extractor) Extract(html string) (*vbpl.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vbpl.Errorf(vbpl.EINVALID, "failed to parse HTML: %v", err)
	}

	container := doc.Find(contentSelector).First()
	if container.Length() == 0 {
		return nil, vbpl.Errorf(vbpl.ENOTFOUND, "no full-text container in page")
	}
	if strings.TrimSpace(container.Text()) == "" {
		return nil, vbpl.Errorf(vbpl.ENOTFOUND, "full-text container is empty")
	}

	contentHTML, err := container.Html()
	if err != nil {
		return nil, vbpl.Errorf(vbpl.EINTERNAL, "failed to serialize content: %v", err)
	}

	return &vbpl.ExtractResult{
		Title:       strings.ReplaceAll(lastLine(doc.Find("div.box-map").First().Text()), "*", ""),
		ContentHTML: contentHTML,
	}, nil
}

// lastLine returns the last non-empty line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
