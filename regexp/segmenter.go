// Package regexp segments Vietnamese legal text into its chapter
// (Chương), section (Mục) and article (Điều) structure using marker
// regular expressions.
//
// Go's regexp package has no lookahead, so block extents are derived
// from the spans of consecutive marker matches instead: a block runs
// from its marker to the start of the next marker at the same level,
// or to the end of the text. Text before the first marker at a level
// is portal boilerplate and is not attached to any node.
package regexp

import (
	"context"
	"strings"

	"github.com/ndtrung/vbpl"
)

// Segmenter splits legal text with the deterministic marker cascade:
// chapters first, then sections, then a flat article run. Each level is
// tried only when the level above found no markers.
type Segmenter struct{}

var _ vbpl.Segmenter = (*Segmenter)(nil)

// NewSegmenter returns a marker-based segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment implements vbpl.Segmenter. Text without any recognizable
// marker yields an empty forest and a nil error.
func (s *Segmenter) Segment(_ context.Context, text string) ([]*vbpl.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if chapters := splitBlocks(chapterRe, text); len(chapters) > 0 {
		nodes := make([]*vbpl.Node, 0, len(chapters))
		for _, ch := range chapters {
			node := &vbpl.Node{
				Kind:   vbpl.NodeChapter,
				IDText: strings.TrimSpace(ch.marker),
			}
			title, rest := splitTitle(ch.body)
			node.Title = title
			if sections := splitBlocks(sectionRe, rest); len(sections) > 0 {
				node.Children = sectionNodes(sections)
			} else {
				node.Children = articleNodes(rest)
			}
			nodes = append(nodes, node)
		}
		return nodes, nil
	}
	if sections := splitBlocks(sectionRe, text); len(sections) > 0 {
		return sectionNodes(sections), nil
	}
	return articleNodes(text), nil
}

func sectionNodes(blocks []block) []*vbpl.Node {
	nodes := make([]*vbpl.Node, 0, len(blocks))
	for _, b := range blocks {
		node := &vbpl.Node{
			Kind:   vbpl.NodeSection,
			IDText: strings.TrimSpace(b.marker),
		}
		title, rest := splitTitle(b.body)
		node.Title = title
		node.Children = articleNodes(rest)
		nodes = append(nodes, node)
	}
	return nodes
}

func articleNodes(text string) []*vbpl.Node {
	blocks := articleBlocks(text)
	if len(blocks) == 0 {
		return nil
	}
	nodes := make([]*vbpl.Node, 0, len(blocks))
	for _, b := range blocks {
		// Articles carry no separate marker field; the marker stays at
		// the head of the content.
		nodes = append(nodes, &vbpl.Node{
			Kind:    vbpl.NodeArticle,
			Content: strings.TrimSpace(strings.ReplaceAll(b.full, "*", "")),
		})
	}
	return nodes
}

// splitTitle separates the heading of a chapter or section block from
// the text that follows. The title ends where the first article or
// section line begins; the remainder is the raw slice from that
// position, so title text repeated deeper in the block is untouched. A
// block that opens directly with an article or section line has an
// empty title. A block with no such line at all also has an empty
// title: the whole block stays in the remainder so an article the
// boundary grammar cannot see (an unnumbered opener) is still found by
// the block grammar.
func splitTitle(body string) (title, rest string) {
	loc := titleEndRe.FindStringIndex(body)
	if loc == nil {
		return "", strings.TrimSpace(body)
	}
	return cleanTitle(body[:loc[0]]), body[loc[0]:]
}

// cleanTitle strips markdown decoration and brackets from a heading and
// collapses whitespace runs to single spaces. Cleaning is idempotent.
func cleanTitle(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '_', '[', ']', '(', ')', '-':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
