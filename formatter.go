package vbpl

import (
	"fmt"
	"strings"
)

// FormatTree renders a node forest as an indented outline for terminal
// display. Chapters and sections show their marker and title; articles
// show the first line of their content.
func FormatTree(nodes []*Node) string {
	if len(nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	writeTreeLevel(&sb, nodes, 0)
	return sb.String()
}

func writeTreeLevel(sb *strings.Builder, nodes []*Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n.Kind {
		case NodeChapter:
			sb.WriteString(indent + "▸ " + treeLabel(n) + "\n")
		case NodeSection:
			sb.WriteString(indent + "· " + treeLabel(n) + "\n")
		default:
			sb.WriteString(indent + TruncateText(firstLine(n.Content), 96) + "\n")
		}
		writeTreeLevel(sb, n.Children, depth+1)
	}
}

func treeLabel(n *Node) string {
	if n.Title == "" {
		return n.IDText
	}
	return n.IDText + "  " + n.Title
}

// FormatDocuments renders stored documents as a fixed-width listing,
// one document per line.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, doc := range docs {
		title := doc.Info.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&sb, "%-10s  %-19s  %-24s  %s\n",
			doc.DocID,
			doc.FetchedAt.Format("2006-01-02 15:04:05"),
			TruncateText(doc.Info.Status, 24),
			TruncateText(title, 64),
		)
	}
	return sb.String()
}

// TruncateText shortens s to at most max runes, appending "..." when
// anything was cut.
func TruncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
