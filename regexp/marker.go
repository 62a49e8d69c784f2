package regexp

import (
	"regexp"
	"strings"
)

// linePrefix anchors a marker to the start of a line and absorbs the
// indentation and markdown decoration (heading hashes, emphasis) that
// the HTML conversion may leave in front of it.
const linePrefix = `(?m)^[ \t]*(?:#{1,6}[ \t]*)?[*_]{0,3}[ \t]*`

// Marker grammars for the three structural levels. Matching is
// case-sensitive and lenient: any run of roman numeral letters is
// accepted after "Chương" without validating its well-formedness, and
// the backslash run in the article grammar absorbs markdown escaping
// artifacts ("Điều 1\.").
var (
	chapterRe = regexp.MustCompile(linePrefix + `(Chương\s*[MDCLXVI]+)`)
	sectionRe = regexp.MustCompile(linePrefix + `(Mục\s*[0-9]+)`)

	// articleStartRe opens an article block; the number is optional so
	// the leading article of a run may be unnumbered. articleBlocks
	// requires digits in every later marker, so an unnumbered "Điều."
	// deeper in a run stays inside the block it appears in.
	articleStartRe = regexp.MustCompile(linePrefix + `(Điều\s*[0-9]*\\*\.+)`)

	// titleEndRe terminates a chapter or section title: the first line
	// that opens an article or section. Case-insensitive, unlike the
	// level grammars.
	titleEndRe = regexp.MustCompile(`(?i)` + linePrefix + `(?:Điều|Mục)\s*[0-9]`)
)

// block is one marker-delimited region of the text.
type block struct {
	// marker is the captured marker text, e.g. "Chương II" or "Điều 1\.".
	marker string

	// body is the text between the marker and the next block, used for
	// chapter and section blocks.
	body string

	// full is the block text including its marker, used for articles.
	full string
}

// splitBlocks returns one block per marker match. A block extends from
// its marker to the start of the next match, or to the end of the text;
// body and full are raw slices, so no text between markers is lost.
func splitBlocks(re *regexp.Regexp, text string) []block {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	return blocksFromMatches(text, matches)
}

// articleBlocks splits text into article blocks. Block starts and block
// boundaries use different grammars: an unnumbered marker may only open
// the first block, so later unnumbered "Điều." lines do not cut the
// block they belong to.
func articleBlocks(text string) []block {
	matches := articleStartRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	heads := matches[:1]
	for _, m := range matches[1:] {
		if strings.ContainsAny(text[m[2]:m[3]], "0123456789") {
			heads = append(heads, m)
		}
	}
	return blocksFromMatches(text, heads)
}

func blocksFromMatches(text string, matches [][]int) []block {
	if len(matches) == 0 {
		return nil
	}
	blocks := make([]block, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		blocks = append(blocks, block{
			marker: text[m[2]:m[3]],
			body:   text[m[3]:end],
			full:   text[m[2]:end],
		})
	}
	return blocks
}
