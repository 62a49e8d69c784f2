// Package trafilatura extracts main content from HTML pages whose
// structure the portal selectors do not recognize.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/ndtrung/vbpl"
	"golang.org/x/net/html"
)

// Ensure Extractor implements vbpl.Extractor at compile time.
var _ vbpl.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura as the generic fallback for pages the
// portal selectors cannot handle. EnableFallback chains go-readability
// and go-domdistiller behind trafilatura's own heuristics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements vbpl.Extractor. A page in which no heuristic finds
// main content reports ENOTFOUND, so callers treat it as an empty
// document rather than a failure.
func (e *Extractor) Extract(rawHTML string) (*vbpl.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, vbpl.Errorf(vbpl.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, vbpl.Errorf(vbpl.ENOTFOUND, "no main content recognized: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, vbpl.Errorf(vbpl.EINTERNAL, "failed to serialize content: %v", err)
		}
		contentHTML = buf.String()
	}

	return &vbpl.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
