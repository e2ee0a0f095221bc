package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds shared context and streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Names  NamesCmd  `cmd:"" help:"Crawl localized book titles into a name table"`
	Labels LabelsCmd `cmd:"" help:"Add localized chapter labels to a name table"`
}

// NamesCmd is the "names" subcommand.
type NamesCmd struct {
	Languages   string        `required:"" help:"Path to languages.json (array of objects with a code key)"`
	Out         string        `required:"" help:"Output name table path"`
	Books       string        `help:"Existing name table to merge into"`
	Concurrency int           `default:"12" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"12s" help:"Per-request timeout"`
	Langs       []string      `help:"Whitelist of language codes to process"`
}

// LabelsCmd is the "labels" subcommand.
type LabelsCmd struct {
	Languages   string        `required:"" help:"Path to languages.json (array of objects with a code key)"`
	Out         string        `required:"" help:"Output name table path"`
	Books       string        `default:"booksnames.json" help:"Existing name table to merge into"`
	Concurrency int           `default:"12" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"12s" help:"Per-request timeout"`
	Langs       []string      `help:"Whitelist of language codes to process"`
}
