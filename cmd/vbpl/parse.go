package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/crawl"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	doc, err := deps.Parser.Parse(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
		return err
	}

	title := doc.Info.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(deps.Stdout, "%s  %s\n", doc.DocID, title)
	if doc.Info.Status != "" {
		fmt.Fprintf(deps.Stdout, "Hiệu lực: %s\n", doc.Info.Status)
	}
	fmt.Fprintln(deps.Stdout)

	if tree := vbpl.FormatTree(doc.Nodes); tree != "" {
		fmt.Fprint(deps.Stdout, tree)
		fmt.Fprintln(deps.Stdout)
	}

	fmt.Fprintf(deps.Stdout, "%d articles, %s\n",
		vbpl.CountArticles(doc.Nodes), crawl.FormatBytes(len(doc.Body)))

	if c.Out != "" {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
			return err
		}
		if err := os.WriteFile(c.Out, data, 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", c.Out, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}

	return nil
}
