// Package fs exports stored documents to files on disk.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/ndtrung/vbpl"
)

// Format selects the file encoding a Writer produces.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// DocPath builds the export file name for a document id.
// Example: DocPath("out", "116144", "json") → out/116144.json
func DocPath(dir, docID, ext string) string {
	return filepath.Join(dir, docID+"."+ext)
}

// Ensure Writer implements vbpl.DocumentWriter at compile time.
var _ vbpl.DocumentWriter = (*Writer)(nil)

// Writer writes documents to a directory, one file per document, named
// after the document's portal id.
type Writer struct {
	dir    string
	format Format
}

// NewWriter creates a Writer that writes files of the given format to dir.
// An empty format defaults to JSON.
func NewWriter(dir string, format Format) *Writer {
	if format == "" {
		format = FormatJSON
	}
	return &Writer{dir: dir, format: format}
}

// CreateDocument writes a document to disk.
func (w *Writer) CreateDocument(ctx context.Context, doc *vbpl.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	var data []byte
	var err error
	switch w.format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case FormatXML:
		data, err = MarshalXML(doc)
	default:
		return vbpl.Errorf(vbpl.EINVALID, "unsupported export format %q", w.format)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(DocPath(w.dir, doc.DocID, string(w.format)), data, 0644)
}

// MarshalXML renders a document as indented XML. The structural tree
// becomes nested <chapter>, <section> and <article> elements; article
// provision text is the element text.
func MarshalXML(doc *vbpl.Document) ([]byte, error) {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := d.CreateElement("document")
	root.CreateAttr("id", doc.DocID)

	info := root.CreateElement("info")
	info.CreateElement("title").SetText(doc.Info.Title)
	info.CreateElement("status").SetText(doc.Info.Status)
	info.CreateElement("effective_date").SetText(doc.Info.EffectiveDate)
	info.CreateElement("expired_date").SetText(doc.Info.ExpiredDate)

	for _, n := range doc.Nodes {
		appendNode(root, n)
	}

	d.Indent(2)
	return d.WriteToBytes()
}

// appendNode adds the element for a tree node and recurses into children.
func appendNode(parent *etree.Element, n *vbpl.Node) {
	var tag string
	switch n.Kind {
	case vbpl.NodeChapter:
		tag = "chapter"
	case vbpl.NodeSection:
		tag = "section"
	default:
		tag = "article"
	}

	el := parent.CreateElement(tag)
	if n.IDText != "" {
		el.CreateAttr("id_text", n.IDText)
	}
	if n.Title != "" {
		el.CreateAttr("title", n.Title)
	}
	if n.Kind == vbpl.NodeArticle {
		el.SetText(n.Content)
	}
	for _, child := range n.Children {
		appendNode(el, child)
	}
}
