package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ndtrung/vbpl"
)

// Ensure LoggingSegmenter implements vbpl.Segmenter.
var _ vbpl.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with debug logging. strategy names
// the wrapped implementation in log lines, e.g. "regexp" or "gemini".
type LoggingSegmenter struct {
	next     vbpl.Segmenter
	strategy string
	logger   *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next vbpl.Segmenter, strategy string, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, strategy: strategy, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the operation.
func (s *LoggingSegmenter) Segment(ctx context.Context, text string) (nodes []*vbpl.Node, err error) {
	defer func(begin time.Time) {
		s.logger.Info("segment",
			"strategy", s.strategy,
			"bytes", len(text),
			"nodes", len(nodes),
			"articles", vbpl.CountArticles(nodes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Segment(ctx, text)
}
