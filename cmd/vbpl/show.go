package main

import (
	"encoding/json"
	"fmt"

	"github.com/ndtrung/vbpl"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByDocID(deps.Ctx, c.ID)
	if err != nil {
		if vbpl.ErrorCode(err) == vbpl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'vbpl list' to see stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
		return err
	}

	if c.JSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	title := doc.Info.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(deps.Stdout, "%s  %s\n", doc.DocID, title)
	if doc.Info.Status != "" {
		fmt.Fprintf(deps.Stdout, "Hiệu lực: %s\n", doc.Info.Status)
	}
	fmt.Fprintf(deps.Stdout, "Fetched: %s\n", doc.FetchedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(deps.Stdout)

	if tree := vbpl.FormatTree(doc.Nodes); tree != "" {
		fmt.Fprint(deps.Stdout, tree)
	}

	return nil
}
