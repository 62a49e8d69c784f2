package vbpl

import "context"

// Segmenter splits a document's markdown text into its structural tree.
type Segmenter interface {
	// Segment parses the text and returns the top-level nodes.
	// Text with no recognizable structure yields an empty slice and a
	// nil error; Segment never fails on malformed input, only on
	// transport or cancellation errors.
	Segment(ctx context.Context, text string) ([]*Node, error)
}
