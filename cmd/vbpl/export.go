package main

import (
	"fmt"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	writer := fs.NewWriter(c.Dir, fs.Format(c.Format))

	for _, id := range c.IDs {
		doc, err := deps.Documents.FindDocumentByDocID(deps.Ctx, id)
		if err != nil {
			if vbpl.ErrorCode(err) == vbpl.ENOTFOUND {
				fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'vbpl list' to see stored documents.\n", id)
				return err
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
			return err
		}

		if err := writer.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "Wrote %s\n", fs.DocPath(c.Dir, doc.DocID, c.Format))
	}

	return nil
}
