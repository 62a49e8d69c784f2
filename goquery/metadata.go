package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ndtrung/vbpl"
)

// Metadata line prefixes in the vbInfo box. The portal renders them
// case-sensitively; "Hiệu lực:" is checked last because the date
// prefixes embed the same words in lowercase.
const (
	statusPrefix    = "Hiệu lực:"
	effectivePrefix = "Ngày có hiệu lực:"
	expiredPrefix   = "Ngày hết hiệu lực:"
)

// Ensure InfoExtractor implements vbpl.InfoExtractor at compile time.
var _ vbpl.InfoExtractor = (*InfoExtractor)(nil)

// InfoExtractor reads document metadata and the relationship diagram
// out of portal pages.
type InfoExtractor struct{}

// NewInfoExtractor creates a new InfoExtractor.
func NewInfoExtractor() *InfoExtractor {
	return &InfoExtractor{}
}

// ExtractInfo implements vbpl.InfoExtractor. Each metadata region is
// optional: a page missing one leaves the corresponding fields empty.
func (x *InfoExtractor) ExtractInfo(html string) (*vbpl.DocumentInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vbpl.Errorf(vbpl.EINVALID, "failed to parse HTML: %v", err)
	}

	info := &vbpl.DocumentInfo{}

	for _, line := range strings.Split(doc.Find("div.vbInfo").First().Text(), "\n") {
		switch {
		case strings.Contains(line, effectivePrefix):
			info.EffectiveDate = textAfter(line, effectivePrefix)
		case strings.Contains(line, expiredPrefix):
			info.ExpiredDate = textAfter(line, expiredPrefix)
		case strings.Contains(line, statusPrefix):
			info.Status = textAfter(line, statusPrefix)
		}
	}

	info.Title = strings.ReplaceAll(lastLine(doc.Find("div.box-map").First().Text()), "*", "")

	if href, ok := doc.Find("div.header a[href]").First().Attr("href"); ok {
		info.DocumentID = itemIDParam(href)
	}

	return info, nil
}

// textAfter returns the trimmed text following the last occurrence of
// prefix in line.
func textAfter(line, prefix string) string {
	i := strings.LastIndex(line, prefix)
	return strings.TrimSpace(line[i+len(prefix):])
}

// itemIDParam extracts the ItemID query parameter from a portal href.
// Returns an empty string when the href has no ItemID.
func itemIDParam(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("ItemID")
}
