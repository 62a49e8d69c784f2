package main

import (
	"fmt"

	"github.com/ndtrung/vbpl"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if vbpl.ErrorCode(err) == vbpl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'vbpl list' to see stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.ID)
	return nil
}
