package main

import (
	"fmt"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.Follow && len(c.IDs) != 1 {
		fmt.Fprintf(deps.Stderr, "error: --follow takes exactly one seed id\n")
		return vbpl.Errorf(vbpl.EINVALID, "--follow takes exactly one seed id")
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %d documents\n", event.Total)
		case crawl.ProgressCompleted:
			title := event.Title
			if title == "" {
				title = "(untitled)"
			}
			if event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  %s\n", event.Completed, event.Total, event.DocID, title)
			} else {
				fmt.Fprintf(deps.Stdout, "  [%d] %s  %s\n", event.Completed, event.DocID, title)
			}
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.DocID, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after the crawl completes
		}
	}

	var result *crawl.Result
	var err error
	if c.Follow {
		result, err = deps.Parser.Follow(deps.Ctx, c.IDs[0], c.Max, progress)
	} else {
		result, err = deps.Parser.ParseBatch(deps.Ctx, c.IDs, c.Concurrency, progress)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbpl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d documents, %d articles (%s, %s)\n",
		result.Saved, result.Articles, crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Failed %d documents\n", result.Failed)
	}

	return nil
}
