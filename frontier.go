package vbpl

import "context"

// DocRef identifies a document discovered through the relationship graph.
type DocRef struct {
	// ID is the portal ItemID of the referenced document.
	ID string

	// Title is the reference's display title.
	Title string

	// Relation is the relationship group label the reference came from.
	Relation string

	// Priority orders the crawl; higher values are crawled first.
	Priority int
}

// Frontier manages a crawl queue of document references with deduplication.
type Frontier interface {
	// Push adds a reference to the frontier.
	// Returns false if the document has already been seen.
	Push(ref DocRef) bool

	// Pop returns the next reference by priority.
	// Returns false if the frontier is empty.
	Pop() (DocRef, bool)

	// Len returns the number of references in the queue.
	Len() int

	// Seen returns true if the document has been processed or queued.
	Seen(id string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
