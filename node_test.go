package vbpl_test

import (
	"testing"

	"github.com/ndtrung/vbpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts chapter with sections", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:   vbpl.NodeChapter,
			IDText: "Chương IV",
			Title:  "HOẠT ĐỘNG CỦA TỔ CHỨC TÍN DỤNG",
			Children: []*vbpl.Node{
				{
					Kind:   vbpl.NodeSection,
					IDText: "Mục 1",
					Title:  "CẤP TÍN DỤNG",
					Children: []*vbpl.Node{
						{Kind: vbpl.NodeArticle, Content: "Điều 90. Phạm vi hoạt động"},
					},
				},
			},
		}

		assert.NoError(t, node.Validate())
	})

	t.Run("accepts chapter with articles directly", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:   vbpl.NodeChapter,
			IDText: "Chương I",
			Title:  "QUY ĐỊNH CHUNG",
			Children: []*vbpl.Node{
				{Kind: vbpl.NodeArticle, Content: "Điều 1. Phạm vi điều chỉnh"},
			},
		}

		assert.NoError(t, node.Validate())
	})

	t.Run("rejects chapter mixing sections and articles", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:   vbpl.NodeChapter,
			IDText: "Chương II",
			Children: []*vbpl.Node{
				{Kind: vbpl.NodeSection, IDText: "Mục 1"},
				{Kind: vbpl.NodeArticle, Content: "Điều 5."},
			},
		}

		err := node.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("rejects chapter with content", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{Kind: vbpl.NodeChapter, IDText: "Chương I", Content: "text"}

		err := node.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("rejects section containing a section", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:   vbpl.NodeSection,
			IDText: "Mục 1",
			Children: []*vbpl.Node{
				{Kind: vbpl.NodeSection, IDText: "Mục 2"},
			},
		}

		err := node.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("rejects article with children", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:    vbpl.NodeArticle,
			Content: "Điều 1.",
			Children: []*vbpl.Node{
				{Kind: vbpl.NodeArticle, Content: "Điều 2."},
			},
		}

		err := node.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("rejects article carrying marker text", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:    vbpl.NodeArticle,
			IDText:  "Điều 1.",
			Content: "Điều 1. Phạm vi điều chỉnh",
		}

		err := node.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("rejects missing kind", func(t *testing.T) {
		t.Parallel()

		err := (&vbpl.Node{IDText: "Điều 1."}).Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		err := (&vbpl.Node{Kind: "PARAGRAPH", IDText: "1."}).Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})

	t.Run("validates descendants recursively", func(t *testing.T) {
		t.Parallel()

		node := &vbpl.Node{
			Kind:   vbpl.NodeChapter,
			IDText: "Chương I",
			Children: []*vbpl.Node{
				{
					Kind:   vbpl.NodeSection,
					IDText: "Mục 1",
					Children: []*vbpl.Node{
						{Kind: vbpl.NodeArticle, Content: "x", Children: []*vbpl.Node{
							{Kind: vbpl.NodeArticle, Content: "y"},
						}},
					},
				},
			},
		}

		err := node.Validate()

		require.Error(t, err)
		assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	nodes := []*vbpl.Node{
		{
			Kind:   vbpl.NodeChapter,
			IDText: "Chương I",
			Children: []*vbpl.Node{
				{Kind: vbpl.NodeArticle, Content: "a"},
				{Kind: vbpl.NodeArticle, Content: "b"},
			},
		},
		{Kind: vbpl.NodeArticle, Content: "c"},
	}

	var visited []string
	vbpl.Walk(nodes, func(n *vbpl.Node) {
		if n.Kind == vbpl.NodeArticle {
			visited = append(visited, n.Content)
			return
		}
		visited = append(visited, n.IDText)
	})

	assert.Equal(t, []string{"Chương I", "a", "b", "c"}, visited)
}

func TestCountArticles(t *testing.T) {
	t.Parallel()

	t.Run("counts nested articles", func(t *testing.T) {
		t.Parallel()

		nodes := []*vbpl.Node{
			{
				Kind:   vbpl.NodeChapter,
				IDText: "Chương I",
				Children: []*vbpl.Node{
					{
						Kind:   vbpl.NodeSection,
						IDText: "Mục 1",
						Children: []*vbpl.Node{
							{Kind: vbpl.NodeArticle, Content: "a"},
							{Kind: vbpl.NodeArticle, Content: "b"},
						},
					},
				},
			},
			{Kind: vbpl.NodeArticle, Content: "c"},
		}

		assert.Equal(t, 3, vbpl.CountArticles(nodes))
	})

	t.Run("empty forest has no articles", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, vbpl.CountArticles(nil))
	})
}
