package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/ndtrung/vbpl"
)

// Frontier configuration for graph crawling.
const (
	// frontierExpectedDocs is the expected number of document ids for Bloom filter sizing.
	frontierExpectedDocs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// DefaultMaxDocs limits a graph crawl started without an explicit cap.
	DefaultMaxDocs = 100
	// defaultFollowRPS is the per-host request rate when no limiter is configured.
	defaultFollowRPS = 1
)

// relationRank orders relationship groups for the crawl frontier.
// Amendment chains are crawled first: a document's current text depends
// on them. The group labels come from the portal's diagram page.
func relationRank(group string) int {
	switch {
	case strings.Contains(group, "sửa đổi"):
		return 40
	case strings.Contains(group, "hướng dẫn"):
		return 30
	case strings.Contains(group, "căn cứ"):
		return 20
	case strings.Contains(group, "dẫn chiếu"):
		return 10
	default:
		return 0
	}
}

// Follow crawls the relationship graph starting from seedID and stops after
// maxDocs documents. Related documents are queued by relationship rank and
// deduplicated with a Bloom filter.
//
// Note: documents are processed sequentially (not concurrently) to simplify
// rate limiting and frontier management. For bulk crawls of known ids, use
// ParseBatch.
func (p *Parser) Follow(ctx context.Context, seedID string, maxDocs int, progress ProgressFunc) (*Result, error) {
	if maxDocs <= 0 {
		maxDocs = DefaultMaxDocs
	}

	limiter := p.RateLimiter
	if limiter == nil {
		limiter = NewDomainLimiter(defaultFollowRPS)
	}

	// Create frontier and seed it. The seed outranks everything so it is
	// always crawled first.
	frontier := NewFrontier(frontierExpectedDocs, frontierFalsePositiveRate)
	frontier.Push(vbpl.DocRef{ID: seedID, Priority: 100})

	var result Result
	processedCount := 0

	for {
		ref, ok := frontier.Pop()
		if !ok {
			break // frontier empty
		}

		if processedCount >= maxDocs {
			break
		}

		// Check context cancellation
		if ctx.Err() != nil {
			break
		}
		processedCount++

		// Rate limit per portal host
		if err := limiter.Wait(ctx, portalHost(p.Portal.FullText(ref.ID))); err != nil {
			break // context canceled
		}

		doc, err := p.parse(ctx, ref.ID)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: processedCount,
					DocID:     ref.ID,
					Error:     err,
				})
			}
			continue
		}

		// Queue the documents this one relates to
		for group, related := range doc.Info.Relations {
			rank := relationRank(group)
			for _, rel := range related {
				if rel.ID == "" || rel.ID == doc.DocID {
					continue
				}
				frontier.Push(vbpl.DocRef{
					ID:       rel.ID,
					Title:    rel.Title,
					Relation: group,
					Priority: rank,
				})
			}
		}

		if p.Documents != nil {
			if err := p.Documents.CreateDocument(ctx, doc); err != nil {
				result.Failed++
				if progress != nil {
					progress(ProgressEvent{
						Type:      ProgressFailed,
						Completed: processedCount,
						DocID:     ref.ID,
						Error:     err,
					})
				}
				continue
			}
		}

		result.Saved++
		result.Articles += vbpl.CountArticles(doc.Nodes)
		result.Bytes += len(doc.Body)
		if p.TokenCounter != nil {
			if tokens, err := p.TokenCounter.CountTokens(ctx, doc.Body); err == nil {
				result.Tokens += tokens
			}
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: processedCount,
				DocID:     ref.ID,
				Title:     doc.Info.Title,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: processedCount,
		})
	}

	return &result, nil
}

// portalHost extracts the host from a portal URL for rate limiting.
func portalHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
