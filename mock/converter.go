package mock

import "github.com/ndtrung/vbpl"

var _ vbpl.Converter = (*Converter)(nil)

// Converter is a mock implementation of vbpl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
