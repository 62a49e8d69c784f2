package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ndtrung/vbpl"
)

// Compile-time interface verification.
var _ vbpl.DocumentService = (*DocumentService)(nil)

// DocumentService implements vbpl.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateDocument stores a document, replacing any existing document with
// the same portal id. The replaced row keeps its original internal ID,
// which is read back into doc.ID.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *vbpl.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Body)

	nodes, err := marshalNodes(doc.Nodes)
	if err != nil {
		return fmt.Errorf("failed to encode nodes: %w", err)
	}
	relations, err := marshalRelations(doc.Info.Relations)
	if err != nil {
		return fmt.Errorf("failed to encode relations: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, doc_id, title, status, doc_date, effective_date, expired_date, body, nodes, relations, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET
			title = excluded.title,
			status = excluded.status,
			doc_date = excluded.doc_date,
			effective_date = excluded.effective_date,
			expired_date = excluded.expired_date,
			body = excluded.body,
			nodes = excluded.nodes,
			relations = excluded.relations,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, doc.ID, doc.DocID, doc.Info.Title, doc.Info.Status, doc.Info.Date,
		doc.Info.EffectiveDate, doc.Info.ExpiredDate, doc.Body, nodes, relations,
		doc.ContentHash, doc.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	// On conflict the row keeps its original id; read it back.
	return s.db.QueryRowContext(ctx,
		"SELECT id FROM documents WHERE doc_id = ?", doc.DocID,
	).Scan(&doc.ID)
}

// FindDocumentByDocID retrieves a document by its portal id.
func (s *DocumentService) FindDocumentByDocID(ctx context.Context, docID string) (*vbpl.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, doc_id, title, status, doc_date, effective_date, expired_date, body, nodes, relations, content_hash, fetched_at
		FROM documents
		WHERE doc_id = ?
	`, docID)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, vbpl.Errorf(vbpl.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter vbpl.DocumentFilter) ([]*vbpl.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, doc_id, title, status, doc_date, effective_date, expired_date, body, nodes, relations, content_hash, fetched_at FROM documents WHERE 1=1")

	if filter.DocID != nil {
		query.WriteString(" AND doc_id = ?")
		args = append(args, *filter.DocID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	switch filter.SortBy {
	case vbpl.SortByTitle:
		query.WriteString(" ORDER BY title ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*vbpl.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document by its portal id.
func (s *DocumentService) DeleteDocument(ctx context.Context, docID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE doc_id = ?", docID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return vbpl.Errorf(vbpl.ENOTFOUND, "document not found")
	}

	return nil
}

// scanDocument reads one documents row via the given scan function and
// decodes the JSON columns.
func scanDocument(scan func(dest ...any) error) (*vbpl.Document, error) {
	var doc vbpl.Document
	var nodes, relations, fetchedAt string

	err := scan(&doc.ID, &doc.DocID, &doc.Info.Title, &doc.Info.Status,
		&doc.Info.Date, &doc.Info.EffectiveDate, &doc.Info.ExpiredDate,
		&doc.Body, &nodes, &relations, &doc.ContentHash, &fetchedAt)
	if err != nil {
		return nil, err
	}

	doc.Info.DocumentID = doc.DocID

	if err := json.Unmarshal([]byte(nodes), &doc.Nodes); err != nil {
		return nil, fmt.Errorf("failed to decode nodes: %w", err)
	}
	if err := json.Unmarshal([]byte(relations), &doc.Info.Relations); err != nil {
		return nil, fmt.Errorf("failed to decode relations: %w", err)
	}

	doc.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &doc, nil
}

// marshalNodes encodes the segmented tree. A nil forest is stored as an
// empty JSON array rather than null.
func marshalNodes(nodes []*vbpl.Node) (string, error) {
	if nodes == nil {
		return "[]", nil
	}
	b, err := json.Marshal(nodes)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// marshalRelations encodes the relationship groups. A nil map is stored
// as an empty JSON object rather than null.
func marshalRelations(relations map[string][]vbpl.RelatedDoc) (string, error) {
	if relations == nil {
		return "{}", nil
	}
	b, err := json.Marshal(relations)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
