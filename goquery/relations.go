package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ndtrung/vbpl"
	"golang.org/x/net/html"
)

// currentDocGroup is the diagram group that lists the document itself.
// Its single entry carries no ItemID, so the id is backfilled from the
// document being parsed.
const currentDocGroup = "Văn bản hiện thời"

// ExtractRelations implements vbpl.InfoExtractor. It reads the
// relationship diagram ("lược đồ") page and groups related documents by
// the diagram's category labels ("Văn bản căn cứ", "Văn bản bị thay
// thế", ...). A page without a diagram yields an empty map.
func (x *InfoExtractor) ExtractRelations(htmlSrc string, docID string) (map[string][]vbpl.RelatedDoc, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, vbpl.Errorf(vbpl.EINVALID, "failed to parse HTML: %v", err)
	}

	relations := make(map[string][]vbpl.RelatedDoc)

	doc.Find("div.vbLuocDo").First().Find(`div[class^="luocdo"]`).Each(func(_ int, group *goquery.Selection) {
		label := groupLabel(group)
		if label == "" {
			return
		}
		refs := []vbpl.RelatedDoc{}
		group.Find("div.content li").Each(func(_ int, li *goquery.Selection) {
			title, id := relatedItem(li)
			if title == "" {
				return
			}
			if id == "" && label == currentDocGroup {
				id = docID
			}
			refs = append(refs, vbpl.RelatedDoc{Title: title, ID: id})
		})
		relations[label] = refs
	})

	return relations, nil
}

// groupLabel returns the category label of one diagram group: the text
// of the first anchor in the group's title bar, skipping the openClose
// toggle anchor.
func groupLabel(group *goquery.Selection) string {
	title := group.Find("div.title").First()
	if title.Length() == 0 {
		title = group.Find("div.titleht").First()
	}

	var label string
	title.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if a.HasClass("openClose") {
			return true
		}
		if text := strings.TrimSpace(a.Text()); text != "" {
			label = text
			return false
		}
		return true
	})
	return label
}

// relatedItem reads one list entry of a diagram group: the entry title
// is the li's direct text plus the text of its jTips anchor, and the id
// comes from the anchor's ItemID parameter.
func relatedItem(li *goquery.Selection) (title, id string) {
	var sb strings.Builder
	li.Contents().Each(func(_ int, c *goquery.Selection) {
		node := c.Get(0)
		switch {
		case node.Type == html.TextNode:
			sb.WriteString(node.Data)
		case node.Type == html.ElementNode && node.Data == "a" && c.HasClass("jTips"):
			sb.WriteString(c.Text())
			if href, ok := c.Attr("href"); ok {
				id = itemIDParam(href)
			}
		}
	})
	return strings.Join(strings.Fields(sb.String()), " "), id
}
