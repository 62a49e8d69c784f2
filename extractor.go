package vbpl

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the document title, when the page exposes one.
	Title string

	// ContentHTML is the full-text container as HTML.
	// Surrounding page chrome (nav, sidebar, footer) has been removed.
	ContentHTML string
}

// Extractor extracts the document body from an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the document body.
	// Returns ENOTFOUND when the page has no recognizable content
	// container; callers treat that as an empty document rather than
	// a failure.
	Extract(html string) (*ExtractResult, error)
}
