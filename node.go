package vbpl

// NodeKind identifies the structural level of a document tree node.
type NodeKind string

// Structural levels of a Vietnamese legal document, from the outermost in.
// Chương (chapter) may contain Mục (section) or Điều (article) directly;
// Mục contains only Điều; Điều is a leaf and carries the provision text.
const (
	NodeChapter NodeKind = "CHAPTER"
	NodeSection NodeKind = "SECTION"
	NodeArticle NodeKind = "ARTICLE"
)

// Node is one element of a document's structural tree.
type Node struct {
	// Kind is the structural level of this node.
	Kind NodeKind `json:"type"`

	// IDText is the marker text that opened a chapter or section, e.g.
	// "Chương II" or "Mục 1". Articles keep their marker at the head of
	// Content and carry no IDText.
	IDText string `json:"id_text,omitempty"`

	// Title is the cleaned heading line that follows a chapter or section
	// marker. Articles have no separate title.
	Title string `json:"title"`

	// Content is the provision text of an article, marker included.
	// Empty for chapters and sections.
	Content string `json:"content,omitempty"`

	// Children are the nested nodes of a chapter or section.
	Children []*Node `json:"children,omitempty"`
}

// Validate returns an error if the node or any of its descendants violates
// the tree shape: chapters hold sections or articles (never both), sections
// hold only articles, and articles are leaves with content.
func (n *Node) Validate() error {
	switch n.Kind {
	case NodeChapter:
		if n.Content != "" {
			return Errorf(EINVALID, "chapter %q must not carry content", n.IDText)
		}
		var sections, articles int
		for _, child := range n.Children {
			switch child.Kind {
			case NodeSection:
				sections++
			case NodeArticle:
				articles++
			default:
				return Errorf(EINVALID, "chapter %q has child of kind %q", n.IDText, child.Kind)
			}
		}
		if sections > 0 && articles > 0 {
			return Errorf(EINVALID, "chapter %q mixes section and article children", n.IDText)
		}
	case NodeSection:
		if n.Content != "" {
			return Errorf(EINVALID, "section %q must not carry content", n.IDText)
		}
		for _, child := range n.Children {
			if child.Kind != NodeArticle {
				return Errorf(EINVALID, "section %q has child of kind %q", n.IDText, child.Kind)
			}
		}
	case NodeArticle:
		if n.IDText != "" {
			return Errorf(EINVALID, "article must not carry marker text %q", n.IDText)
		}
		if len(n.Children) > 0 {
			return Errorf(EINVALID, "article must not have children")
		}
	case "":
		return Errorf(EINVALID, "node kind required")
	default:
		return Errorf(EINVALID, "unknown node kind %q", n.Kind)
	}
	for _, child := range n.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits every node in the forest depth-first, parents before children.
func Walk(nodes []*Node, fn func(*Node)) {
	for _, n := range nodes {
		fn(n)
		Walk(n.Children, fn)
	}
}

// CountArticles returns the number of article nodes in the forest.
func CountArticles(nodes []*Node) int {
	var count int
	Walk(nodes, func(n *Node) {
		if n.Kind == NodeArticle {
			count++
		}
	})
	return count
}
