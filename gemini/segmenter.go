// Package gemini implements LLM-assisted segmentation and token
// accounting using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ndtrung/vbpl"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// systemPrompt instructs the model to describe the document structure
// as line ranges over the numbered text it receives. Article text never
// passes through the model; it is recovered by slicing the original
// lines.
const systemPrompt = `You are a parser for Vietnamese legal documents. The user message contains the full text of one document, one line per row, prefixed with "N | " where N is the 1-based line number.

Return a JSON array describing the document structure. Each element is an object with:
- "type": "CHAPTER", "SECTION" or "ARTICLE"
- "id_text": the marker text, e.g. "Chương I", "Mục 2" or "Điều 5."
- "title": the heading text for chapters and sections, "" for articles
- "children": nested elements; chapters contain sections or articles, sections contain articles
- "start_line" and "end_line": for ARTICLE elements only, the inclusive line range of the article, marker line included

Do not repeat the article text; return only line numbers. Return only the JSON array.`

// Ensure Segmenter implements vbpl.Segmenter at compile time.
var _ vbpl.Segmenter = (*Segmenter)(nil)

// Segmenter implements vbpl.Segmenter using Google Gemini. It is the
// fallback strategy for documents whose structure the marker grammars
// cannot recover.
type Segmenter struct {
	client *genai.Client
}

// NewSegmenter creates a new Segmenter.
func NewSegmenter(client *genai.Client) *Segmenter {
	return &Segmenter{client: client}
}

// Segment implements vbpl.Segmenter. A response that is not valid JSON
// yields an empty forest and a nil error; only transport and API
// failures are returned as errors.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]*vbpl.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	prompt, lines := NumberLines(text)

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, vbpl.Errorf(vbpl.EINTERNAL, "gemini returned nil result")
	}

	nodes, err := DecodeNodes(result.Text(), lines)
	if err != nil {
		return nil, nil
	}
	return nodes, nil
}

// BuildConfig returns the GenerateContentConfig for structure requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.8)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// NumberLines builds the numbered prompt payload and returns it along
// with the raw lines. Lines are trimmed in the payload to save tokens,
// but slicing later uses the raw lines so article text survives intact.
func NumberLines(text string) (string, []string) {
	lines := strings.Split(text, "\n")
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("%d | %s", i+1, strings.TrimSpace(line))
	}
	return strings.Join(numbered, "\n"), lines
}

// maxDepth bounds the structure at chapter > section > article.
const maxDepth = 3

// rangeNode is the wire shape of one element of the model's response.
type rangeNode struct {
	Type      string       `json:"type"`
	IDText    string       `json:"id_text"`
	Title     string       `json:"title"`
	StartLine int          `json:"start_line"`
	EndLine   int          `json:"end_line"`
	Children  []*rangeNode `json:"children"`
}

// DecodeNodes parses the model response into a node forest. Markdown
// code fences around the JSON are tolerated. Returns EINVALID when the
// response is not a JSON array.
func DecodeNodes(response string, lines []string) ([]*vbpl.Node, error) {
	cleaned := strings.ReplaceAll(response, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var ranges []*rangeNode
	if err := json.Unmarshal([]byte(cleaned), &ranges); err != nil {
		return nil, vbpl.Errorf(vbpl.EINVALID, "malformed structure JSON: %v", err)
	}
	return convertNodes(ranges, lines, 0), nil
}

func convertNodes(ranges []*rangeNode, lines []string, depth int) []*vbpl.Node {
	if depth >= maxDepth {
		return nil
	}
	var nodes []*vbpl.Node
	for _, r := range ranges {
		switch kind := vbpl.NodeKind(r.Type); kind {
		case vbpl.NodeArticle:
			content, ok := sliceLines(lines, r.StartLine, r.EndLine)
			if !ok {
				continue
			}
			// The model's id_text is discarded for articles; the marker
			// line is already the head of the sliced content.
			nodes = append(nodes, &vbpl.Node{
				Kind:    vbpl.NodeArticle,
				Content: content,
			})
		case vbpl.NodeChapter, vbpl.NodeSection:
			nodes = append(nodes, &vbpl.Node{
				Kind:     kind,
				IDText:   strings.TrimSpace(r.IDText),
				Title:    strings.TrimSpace(r.Title),
				Children: convertNodes(r.Children, lines, depth+1),
			})
		default:
			// Elements of unknown kind are dropped rather than
			// failing the whole parse.
		}
	}
	return nodes
}

// sliceLines recovers article text from a 1-based inclusive line range.
// Out-of-range bounds are clamped; a range that is empty after clamping
// reports false.
func sliceLines(lines []string, start, end int) (string, bool) {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return "", false
	}
	text := strings.Join(lines[start-1:end], "\n")
	return strings.TrimSpace(strings.ReplaceAll(text, "*", "")), true
}
