package vbpl

// InfoExtractor reads document metadata out of portal pages.
type InfoExtractor interface {
	// ExtractInfo reads the metadata regions of a full-text page.
	// Missing regions leave the corresponding fields empty; the method
	// does not fail on incomplete pages.
	ExtractInfo(html string) (*DocumentInfo, error)

	// ExtractRelations reads the relationship diagram page and returns
	// related documents grouped by relationship label. docID is the
	// current document's id; it backfills the id of the "Văn bản hiện
	// thời" (current document) entry when the page omits it.
	ExtractRelations(html string, docID string) (map[string][]RelatedDoc, error)
}
