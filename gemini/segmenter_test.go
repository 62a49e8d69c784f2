package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmenter_Segment_ReturnsEmptyForBlankText(t *testing.T) {
	t.Parallel()

	seg := gemini.NewSegmenter(nil) // nil client ok, blank text returns early

	nodes, err := seg.Segment(context.Background(), "   \n\t")

	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "start_line")
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Vietnamese legal documents")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.8, *config.Temperature, 0.001)
}

func TestBuildConfig_RequestsJSONResponse(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	assert.Equal(t, "application/json", config.ResponseMIMEType)
}

func TestNumberLines_NumbersFromOne(t *testing.T) {
	t.Parallel()

	prompt, lines := gemini.NumberLines("first\n  second  \nthird")

	assert.Equal(t, "1 | first\n2 | second\n3 | third", prompt)
	require.Len(t, lines, 3)
	// Raw lines keep their whitespace for faithful slicing later.
	assert.Equal(t, "  second  ", lines[1])
}

func TestDecodeNodes_BuildsTree(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Chương I",
		"QUY ĐỊNH CHUNG",
		"Điều 1. Phạm vi",
		"Nội dung điều một.",
		"Điều 2. Đối tượng",
		"Nội dung điều hai.",
	}
	response := `[
		{
			"type": "CHAPTER",
			"id_text": "Chương I",
			"title": "QUY ĐỊNH CHUNG",
			"children": [
				{"type": "ARTICLE", "id_text": "Điều 1.", "start_line": 3, "end_line": 4},
				{"type": "ARTICLE", "id_text": "Điều 2.", "start_line": 5, "end_line": 6}
			]
		}
	]`

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	ch := nodes[0]
	assert.Equal(t, vbpl.NodeChapter, ch.Kind)
	assert.Equal(t, "Chương I", ch.IDText)
	assert.Equal(t, "QUY ĐỊNH CHUNG", ch.Title)
	require.Len(t, ch.Children, 2)
	assert.Equal(t, "Điều 1. Phạm vi\nNội dung điều một.", ch.Children[0].Content)
	assert.Equal(t, "Điều 2. Đối tượng\nNội dung điều hai.", ch.Children[1].Content)
	// The model's id_text is dropped for articles; the marker already
	// heads the sliced content.
	assert.Empty(t, ch.Children[0].IDText)
	require.NoError(t, ch.Validate())
}

func TestDecodeNodes_StripsCodeFences(t *testing.T) {
	t.Parallel()

	lines := []string{"Điều 1. Nội dung"}
	response := "```json\n[{\"type\": \"ARTICLE\", \"start_line\": 1, \"end_line\": 1}]\n```"

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Điều 1. Nội dung", nodes[0].Content)
}

func TestDecodeNodes_ReturnsErrorForMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := gemini.DecodeNodes("sorry, I could not parse that document", nil)

	require.Error(t, err)
	assert.Equal(t, vbpl.EINVALID, vbpl.ErrorCode(err))
}

func TestDecodeNodes_ClampsLineRanges(t *testing.T) {
	t.Parallel()

	lines := []string{"một", "hai"}
	response := `[{"type": "ARTICLE", "start_line": 0, "end_line": 99}]`

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "một\nhai", nodes[0].Content)
}

func TestDecodeNodes_DropsEmptyRanges(t *testing.T) {
	t.Parallel()

	lines := []string{"một", "hai"}
	response := `[
		{"type": "ARTICLE", "start_line": 2, "end_line": 1},
		{"type": "ARTICLE", "start_line": 1, "end_line": 1}
	]`

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "một", nodes[0].Content)
}

func TestDecodeNodes_DropsUnknownKinds(t *testing.T) {
	t.Parallel()

	lines := []string{"một"}
	response := `[
		{"type": "PREAMBLE", "start_line": 1, "end_line": 1},
		{"type": "ARTICLE", "start_line": 1, "end_line": 1}
	]`

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, vbpl.NodeArticle, nodes[0].Kind)
}

func TestDecodeNodes_StripsAsterisksFromArticles(t *testing.T) {
	t.Parallel()

	lines := []string{"**Điều 1.** Nội dung *nhấn mạnh*."}
	response := `[{"type": "ARTICLE", "id_text": "Điều 1.", "start_line": 1, "end_line": 1}]`

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Điều 1. Nội dung nhấn mạnh.", nodes[0].Content)
	assert.False(t, strings.Contains(nodes[0].Content, "*"))
}

func TestDecodeNodes_LimitsNestingDepth(t *testing.T) {
	t.Parallel()

	lines := []string{"một"}
	response := `[
		{"type": "CHAPTER", "id_text": "Chương I", "children": [
			{"type": "SECTION", "id_text": "Mục 1", "children": [
				{"type": "ARTICLE", "start_line": 1, "end_line": 1, "children": [
					{"type": "ARTICLE", "start_line": 1, "end_line": 1}
				]},
				{"type": "SECTION", "id_text": "Mục sâu", "children": [
					{"type": "ARTICLE", "start_line": 1, "end_line": 1}
				]}
			]}
		]}
	]`

	nodes, err := gemini.DecodeNodes(response, lines)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	sec := nodes[0].Children[0]
	require.Len(t, sec.Children, 2)
	// Articles are leaves and anything below the third level is dropped.
	assert.Empty(t, sec.Children[0].Children)
	assert.Empty(t, sec.Children[1].Children)
}
