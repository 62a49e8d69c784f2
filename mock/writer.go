package mock

import (
	"context"

	"github.com/ndtrung/vbpl"
)

var _ vbpl.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of vbpl.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *vbpl.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *vbpl.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
