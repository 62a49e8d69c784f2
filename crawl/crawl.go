// Package crawl provides document crawling orchestration.
// It coordinates fetching, extraction, segmentation and storage of
// legal documents from the portal.
package crawl

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ndtrung/vbpl"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker limit for batch crawls when the caller
// does not set one. Kept low out of politeness to the portal.
const DefaultConcurrency = 2

// Parser orchestrates the crawling and segmentation of portal documents.
type Parser struct {
	Fetcher      vbpl.Fetcher
	Extractor    vbpl.Extractor
	Fallback     vbpl.Extractor       // optional, tried when Extractor reports ENOTFOUND
	Converter    vbpl.Converter
	Segmenter    vbpl.Segmenter
	Info         vbpl.InfoExtractor
	Documents    vbpl.DocumentService // optional, parsed documents are persisted when set
	TokenCounter vbpl.TokenCounter    // optional, adds token counts to crawl results
	RateLimiter  vbpl.DomainLimiter   // optional, used by Follow
	Portal       vbpl.Portal
	RetryDelays  []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved    int
	Failed   int
	Articles int
	Bytes    int
	Tokens   int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	DocID     string
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types, in the order they occur.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// parseResult holds the outcome of processing a single document id.
type parseResult struct {
	position int
	docID    string
	doc      *vbpl.Document
	err      error
}

// Parse crawls one document: it fetches the full-text page, extracts and
// converts the body, segments it into the structural tree, reads the
// metadata and relationship-diagram pages, and persists the assembled
// document.
func (p *Parser) Parse(ctx context.Context, docID string) (*vbpl.Document, error) {
	doc, err := p.parse(ctx, docID)
	if err != nil {
		return nil, err
	}
	if p.Documents != nil {
		if err := p.Documents.CreateDocument(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// parse runs the pipeline for one document without persisting.
func (p *Parser) parse(ctx context.Context, docID string) (*vbpl.Document, error) {
	html, err := p.fetch(ctx, p.Portal.FullText(docID))
	if err != nil {
		return nil, err
	}

	markdown, title, err := p.extract(html)
	if err != nil {
		return nil, err
	}

	nodes, err := p.Segmenter.Segment(ctx, markdown)
	if err != nil {
		return nil, err
	}

	info, err := p.Info.ExtractInfo(html)
	if err != nil {
		return nil, err
	}
	if info.DocumentID == "" {
		info.DocumentID = docID
	}
	if info.Title == "" {
		info.Title = title
	}

	// The relationship diagram is keyed on the id the page itself
	// declares, which may differ from the id the caller used.
	diagramHTML, err := p.fetch(ctx, p.Portal.Diagram(info.DocumentID))
	if err != nil {
		return nil, err
	}
	relations, err := p.Info.ExtractRelations(diagramHTML, info.DocumentID)
	if err != nil {
		return nil, err
	}
	info.Relations = relations

	return &vbpl.Document{
		DocID: info.DocumentID,
		Info:  *info,
		Nodes: nodes,
		Body:  markdown,
	}, nil
}

// fetch retrieves a page with retry.
func (p *Parser) fetch(ctx context.Context, url string) (string, error) {
	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return fetchWithRetry(ctx, url, p.Fetcher.Fetch, delays)
}

// extract pulls the document body out of the page and converts it to
// markdown. When neither extractor recognizes a content container the
// document is treated as empty rather than failed.
func (p *Parser) extract(html string) (markdown, title string, err error) {
	extracted, err := p.Extractor.Extract(html)
	if err != nil && p.Fallback != nil && vbpl.ErrorCode(err) == vbpl.ENOTFOUND {
		extracted, err = p.Fallback.Extract(html)
	}
	if err != nil {
		if vbpl.ErrorCode(err) == vbpl.ENOTFOUND {
			return "", "", nil
		}
		return "", "", err
	}

	title = extracted.Title
	if extracted.ContentHTML == "" {
		return "", title, nil
	}

	markdown, err = p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", "", err
	}
	return markdown, title, nil
}

// ParseBatch crawls the given document ids concurrently. Once all ids have
// been processed the documents are persisted in input order. The progress
// callback, if provided, receives events as the batch proceeds.
func (p *Parser) ParseBatch(ctx context.Context, docIDs []string, concurrency int, progress ProgressFunc) (*Result, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Channel for collecting results
	resultCh := make(chan parseResult, len(docIDs))

	// Progress tracking
	var completed atomic.Int64
	total := len(docIDs)

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, id := range docIDs {
			g.Go(func() error {
				doc, err := p.parse(gctx, id)
				resultCh <- parseResult{position: i, docID: id, doc: doc, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]parseResult, len(docIDs))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					DocID:     result.docID,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					DocID:     result.docID,
					Title:     result.doc.Info.Title,
				})
			}
		}
	}

	// Save documents and accumulate stats
	var res Result
	for _, result := range results {
		if result.err != nil {
			res.Failed++
			continue
		}

		if p.Documents != nil {
			if err := p.Documents.CreateDocument(ctx, result.doc); err != nil {
				res.Failed++
				continue
			}
		}

		res.Saved++
		res.Articles += vbpl.CountArticles(result.doc.Nodes)
		res.Bytes += len(result.doc.Body)
		if p.TokenCounter != nil {
			if tokens, err := p.TokenCounter.CountTokens(ctx, result.doc.Body); err == nil {
				res.Tokens += tokens
			}
		}
	}

	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &res, nil
}
