package vbpl

import (
	"context"
	"time"
)

// RelatedDoc identifies one document referenced from the relationship
// diagram ("lược đồ") page.
type RelatedDoc struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// DocumentInfo holds the metadata extracted from a document page.
// Field values are kept as the portal renders them; dates in particular
// are not normalized.
type DocumentInfo struct {
	// DocumentID is the portal's ItemID for the document.
	DocumentID string `json:"document_id"`

	// Title is the document title from the breadcrumb box.
	Title string `json:"document_title"`

	// Date is the issuance date. The portal does not expose it on the
	// full-text page, so it is usually empty.
	Date string `json:"document_date"`

	// Status is the validity status line ("Hiệu lực").
	Status string `json:"document_status"`

	EffectiveDate string `json:"effective_date"`
	ExpiredDate   string `json:"expired_date"`

	// Relations maps a relationship group label (e.g. "Văn bản căn cứ")
	// to the documents listed under it.
	Relations map[string][]RelatedDoc `json:"relationship,omitempty"`
}

// Document represents a crawled and parsed legal document.
type Document struct {
	ID          string       `json:"id"`
	DocID       string       `json:"docId"`
	Info        DocumentInfo `json:"document_info"`
	Nodes       []*Node      `json:"data"`
	Body        string       `json:"-"`
	ContentHash string       `json:"contentHash"`
	FetchedAt   time.Time    `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.DocID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	for _, n := range d.Nodes {
		if err := n.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument stores a document. A document with the same DocID is
	// replaced; the stored row keeps its original internal ID.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByDocID retrieves a document by its portal ItemID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByDocID(ctx context.Context, docID string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, docID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByTitle     SortOrder = "title"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	DocID  *string `json:"docId"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
