package main

import (
	"context"
	"io"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/crawl"
	"github.com/ndtrung/vbpl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents vbpl.DocumentService
	Parser    *crawl.Parser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and segmentation details"`

	Parse  ParseCmd  `cmd:"" help:"Crawl one document and print its structural outline"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl documents in bulk or follow the relationship graph"`
	List   ListCmd   `cmd:"" help:"List stored documents"`
	Show   ShowCmd   `cmd:"" help:"Show a stored document"`
	Export ExportCmd `cmd:"" help:"Export stored documents to files"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored document"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	ID      string `arg:"" help:"Portal ItemID of the document"`
	LLM     bool   `help:"Segment with Gemini instead of the marker grammars"`
	Browser bool   `help:"Fetch with a headless browser instead of plain HTTP"`
	Out     string `short:"o" placeholder:"FILE" help:"Also write the document JSON to FILE"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	IDs         []string `arg:"" help:"Portal ItemIDs to crawl"`
	Follow      bool     `help:"Follow the relationship graph from the seed id"`
	Max         int      `default:"100" help:"Document cap for graph crawls"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `help:"Filter by validity status"`
	Limit  int    `default:"50" help:"Maximum number of rows"`
	Offset int    `help:"Number of rows to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Portal ItemID"`
	JSON bool   `help:"Print the raw document JSON instead of the outline"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	IDs    []string `arg:"" help:"Portal ItemIDs to export"`
	Dir    string   `required:"" help:"Output directory"`
	Format string   `default:"json" enum:"json,xml" help:"Export format"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Portal ItemID"`
}
