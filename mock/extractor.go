package mock

import "github.com/ndtrung/vbpl"

var _ vbpl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vbpl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*vbpl.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*vbpl.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ vbpl.InfoExtractor = (*InfoExtractor)(nil)

// InfoExtractor is a mock implementation of vbpl.InfoExtractor.
type InfoExtractor struct {
	ExtractInfoFn      func(html string) (*vbpl.DocumentInfo, error)
	ExtractRelationsFn func(html string, docID string) (map[string][]vbpl.RelatedDoc, error)
}

func (e *InfoExtractor) ExtractInfo(html string) (*vbpl.DocumentInfo, error) {
	return e.ExtractInfoFn(html)
}

func (e *InfoExtractor) ExtractRelations(html string, docID string) (map[string][]vbpl.RelatedDoc, error) {
	return e.ExtractRelationsFn(html, docID)
}
