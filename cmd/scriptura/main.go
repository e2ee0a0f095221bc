// Command scriptura serves the scripture extraction JSON API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"scriptura/books"
	scripturafiber "scriptura/fiber"
	"scriptura/fs"
	"scriptura/goquery"
	scripturahttp "scriptura/http"
	scripturazerolog "scriptura/zerolog"
)

// CLI defines the server's command-line interface.
type CLI struct {
	Port    int    `env:"PORT" default:"5050" help:"Listen port."`
	Names   string `default:"booksnames.json" help:"Path to the precomputed name table JSON."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scriptura"),
		kong.Description("Scripture text extraction API server."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if cli.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	// A missing or corrupt name table degrades to live extraction, so load
	// failures never stop startup.
	table, err := fs.NewNameTableStore(cli.Names).Load(ctx)
	if err != nil {
		return err
	}
	logger.Info().Int("languages", len(table)).Str("path", cli.Names).Msg("name table loaded")

	// Title fetches use the default timeout; chapter bodies are larger and
	// get a longer one.
	titleFetcher := scripturazerolog.NewFetcher(scripturahttp.NewFetcher(), logger)
	defer titleFetcher.Close()
	chapterFetcher := scripturazerolog.NewFetcher(
		scripturahttp.NewFetcher(scripturahttp.WithTimeout(30*time.Second)), logger)
	defer chapterFetcher.Close()

	bookSvc := scripturazerolog.NewBookService(
		books.NewService(goquery.NewTitleService(titleFetcher), table), logger)
	chapterSvc := goquery.NewChapterService(chapterFetcher)

	srv := scripturafiber.NewServer(bookSvc, chapterSvc)

	errc := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cli.Port).Msg("listening")
		errc <- srv.Listen(fmt.Sprintf(":%d", cli.Port))
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		return srv.Shutdown()
	}
}
