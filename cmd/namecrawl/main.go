// Command namecrawl builds and refreshes the per-language name table by
// crawling upstream scripture pages.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"scriptura/crawl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("namecrawl"),
		kong.Description("Crawl localized book names and chapter labels."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'namecrawl --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// progressPrinter reports batch progress to w: every failure, plus a
// percentage line every 20 completions and at the end.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "warn: %s: %v\n", e.Key, e.Error)
		case crawl.ProgressCompleted:
			if e.Total > 0 && (e.Completed%20 == 0 || e.Completed == e.Total) {
				fmt.Fprintf(w, "[%3d%%] %d/%d done\n", e.Completed*100/e.Total, e.Completed, e.Total)
			}
		}
	}
}
