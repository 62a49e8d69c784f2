package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDocument builds a minimal valid document with the given portal id.
func testDocument(docID string) *vbpl.Document {
	return &vbpl.Document{
		DocID: docID,
		Info: vbpl.DocumentInfo{
			DocumentID: docID,
			Title:      "Thông tư " + docID,
			Status:     "Còn hiệu lực",
		},
		Body: "Điều 1. Phạm vi điều chỉnh\n\nNội dung điều một.",
	}
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := testDocument("116144")

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &vbpl.Document{} // missing portal id

		err := svc.CreateDocument(ctx, doc)
		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("replaces document with same portal id keeping internal ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		first := testDocument("116144")
		require.NoError(t, svc.CreateDocument(ctx, first))
		originalID := first.ID

		second := testDocument("116144")
		second.Info.Title = "Thông tư 116144 (sửa đổi)"
		require.NoError(t, svc.CreateDocument(ctx, second))

		assert.Equal(t, originalID, second.ID, "replaced row keeps its internal ID")

		docs, err := svc.FindDocuments(ctx, vbpl.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Thông tư 116144 (sửa đổi)", docs[0].Info.Title)
	})

	t.Run("stores segmented tree and relations", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := testDocument("116144")
		doc.Nodes = []*vbpl.Node{
			{
				Kind:   vbpl.NodeChapter,
				IDText: "Chương I",
				Title:  "QUY ĐỊNH CHUNG",
				Children: []*vbpl.Node{
					{Kind: vbpl.NodeArticle, Content: "Điều 1. Phạm vi điều chỉnh"},
				},
			},
		}
		doc.Info.Relations = map[string][]vbpl.RelatedDoc{
			"Văn bản căn cứ": {{Title: "Luật các tổ chức tín dụng", ID: "90276"}},
		}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByDocID(ctx, "116144")
		require.NoError(t, err)
		require.Len(t, found.Nodes, 1)
		assert.Equal(t, vbpl.NodeChapter, found.Nodes[0].Kind)
		assert.Equal(t, "Chương I", found.Nodes[0].IDText)
		require.Len(t, found.Nodes[0].Children, 1)
		assert.Equal(t, vbpl.NodeArticle, found.Nodes[0].Children[0].Kind)
		require.Contains(t, found.Info.Relations, "Văn bản căn cứ")
		assert.Equal(t, "90276", found.Info.Relations["Văn bản căn cứ"][0].ID)
	})
}

func TestDocumentService_FindDocumentByDocID(t *testing.T) {
	t.Parallel()

	t.Run("returns document when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := testDocument("116144")
		doc.Info.EffectiveDate = "15/03/2017"
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByDocID(ctx, "116144")
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.DocID, found.DocID)
		assert.Equal(t, doc.DocID, found.Info.DocumentID)
		assert.Equal(t, doc.Info.Title, found.Info.Title)
		assert.Equal(t, doc.Info.Status, found.Info.Status)
		assert.Equal(t, "15/03/2017", found.Info.EffectiveDate)
		assert.Equal(t, doc.Body, found.Body)
		assert.Equal(t, doc.ContentHash, found.ContentHash)
		assert.WithinDuration(t, doc.FetchedAt, found.FetchedAt, time.Second)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		_, err := svc.FindDocumentByDocID(ctx, "00000")
		require.Error(t, err)
		assert.Equal(t, vbpl.ENOTFOUND, vbpl.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns all documents with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			doc := testDocument(fmt.Sprintf("11614%d", i))
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, vbpl.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})

	t.Run("filters by portal id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, testDocument("116144")))
		require.NoError(t, svc.CreateDocument(ctx, testDocument("90276")))

		docID := "116144"
		docs, err := svc.FindDocuments(ctx, vbpl.DocumentFilter{DocID: &docID})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "116144", docs[0].DocID)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		current := testDocument("116144")
		expired := testDocument("90276")
		expired.Info.Status = "Hết hiệu lực toàn bộ"
		require.NoError(t, svc.CreateDocument(ctx, current))
		require.NoError(t, svc.CreateDocument(ctx, expired))

		status := "Hết hiệu lực toàn bộ"
		docs, err := svc.FindDocuments(ctx, vbpl.DocumentFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "90276", docs[0].DocID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			doc := testDocument(fmt.Sprintf("10000%d", i))
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, vbpl.DocumentFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("sorts by title when requested", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i, title := range []string{"Nghị định C", "Luật A", "Thông tư B"} {
			doc := testDocument(fmt.Sprintf("20000%d", i))
			doc.Info.Title = title
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, vbpl.DocumentFilter{SortBy: vbpl.SortByTitle})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "Luật A", docs[0].Info.Title)
		assert.Equal(t, "Nghị định C", docs[1].Info.Title)
		assert.Equal(t, "Thông tư B", docs[2].Info.Title)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := testDocument("116144")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		err := svc.DeleteDocument(ctx, "116144")
		require.NoError(t, err)

		_, err = svc.FindDocumentByDocID(ctx, "116144")
		assert.Equal(t, vbpl.ENOTFOUND, vbpl.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		err := svc.DeleteDocument(ctx, "00000")
		require.Error(t, err)
		assert.Equal(t, vbpl.ENOTFOUND, vbpl.ErrorCode(err))
	})
}
