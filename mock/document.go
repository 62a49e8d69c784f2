package mock

import (
	"context"

	"github.com/ndtrung/vbpl"
)

var _ vbpl.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of vbpl.DocumentService.
type DocumentService struct {
	CreateDocumentFn      func(ctx context.Context, doc *vbpl.Document) error
	FindDocumentByDocIDFn func(ctx context.Context, docID string) (*vbpl.Document, error)
	FindDocumentsFn       func(ctx context.Context, filter vbpl.DocumentFilter) ([]*vbpl.Document, error)
	DeleteDocumentFn      func(ctx context.Context, docID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *vbpl.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByDocID(ctx context.Context, docID string) (*vbpl.Document, error) {
	return s.FindDocumentByDocIDFn(ctx, docID)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter vbpl.DocumentFilter) ([]*vbpl.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, docID string) error {
	return s.DeleteDocumentFn(ctx, docID)
}
