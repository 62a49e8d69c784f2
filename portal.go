package vbpl

import "fmt"

// Portal builds page URLs for a document id on a vbpl.vn portal instance.
// Each government body runs its own instance under a path prefix; the
// templates carry a %s placeholder for the document's ItemID.
type Portal struct {
	// FullTextURL is the template for the full-text ("toàn văn") page.
	FullTextURL string

	// DiagramURL is the template for the relationship diagram
	// ("lược đồ") page.
	DiagramURL string
}

// DefaultPortal points at the State Bank instance of vbpl.vn.
var DefaultPortal = Portal{
	FullTextURL: "https://vbpl.vn/nganhangnhanuoc/Pages/vbpq-toanvan.aspx?ItemID=%s",
	DiagramURL:  "https://vbpl.vn/nganhangnhanuoc/Pages/vbpq-luocdo.aspx?ItemID=%s",
}

// FullText returns the full-text page URL for the document id.
func (p Portal) FullText(docID string) string {
	return fmt.Sprintf(p.FullTextURL, docID)
}

// Diagram returns the relationship diagram page URL for the document id.
func (p Portal) Diagram(docID string) string {
	return fmt.Sprintf(p.DiagramURL, docID)
}
