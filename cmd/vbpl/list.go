package main

import (
	"fmt"

	"github.com/ndtrung/vbpl"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := vbpl.DocumentFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents stored. Use 'vbpl parse' or 'vbpl crawl' to fetch some.")
		return nil
	}

	fmt.Fprint(deps.Stdout, vbpl.FormatDocuments(docs))
	return nil
}
