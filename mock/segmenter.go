package mock

import (
	"context"

	"github.com/ndtrung/vbpl"
)

var _ vbpl.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of vbpl.Segmenter.
type Segmenter struct {
	SegmentFn func(ctx context.Context, text string) ([]*vbpl.Node, error)
}

func (s *Segmenter) Segment(ctx context.Context, text string) ([]*vbpl.Node, error) {
	return s.SegmentFn(ctx, text)
}
