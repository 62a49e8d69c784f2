package vbpl_test

import (
	"testing"

	"github.com/ndtrung/vbpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete document", func(t *testing.T) {
		t.Parallel()

		doc := &vbpl.Document{
			DocID: "116144",
			Info:  vbpl.DocumentInfo{Title: "Thông tư 39/2016/TT-NHNN"},
			Nodes: []*vbpl.Node{
				{Kind: vbpl.NodeArticle, Content: "Điều 1. Phạm vi điều chỉnh"},
			},
		}

		assert.NoError(t, doc.Validate())
	})

	t.Run("accepts an empty document", func(t *testing.T) {
		t.Parallel()

		doc := &vbpl.Document{DocID: "159760"}

		assert.NoError(t, doc.Validate())
	})

	t.Run("requires a document ID", func(t *testing.T) {
		t.Parallel()

		err := (&vbpl.Document{}).Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
		assert.Equal(t, "document ID required", vbpl.ErrorMessage(err))
	})

	t.Run("rejects documents with invalid nodes", func(t *testing.T) {
		t.Parallel()

		doc := &vbpl.Document{
			DocID: "116144",
			Nodes: []*vbpl.Node{
				{Kind: vbpl.NodeChapter, IDText: "Chương I", Content: "chapters must not carry content"},
			},
		}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})
}
