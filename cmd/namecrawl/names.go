package main

import (
	"fmt"
	"time"

	"scriptura"
	"scriptura/crawl"
	"scriptura/fs"
	"scriptura/goquery"
	scripturahttp "scriptura/http"
)

// Run executes the names command.
func (c *NamesCmd) Run(deps *Dependencies) error {
	codes, err := crawl.LoadLanguageCodes(c.Languages, c.Langs)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return scriptura.Errorf(scriptura.EINVALID, "no language codes to process")
	}

	fetcher := scripturahttp.NewFetcher(scripturahttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	crawler := &crawl.NameCrawler{
		Titles:      goquery.NewTitleService(fetcher),
		Concurrency: c.Concurrency,
	}

	started := time.Now()
	table, result, err := crawler.Crawl(deps.Ctx, codes, progressPrinter(deps.Stderr))
	if err != nil {
		return err
	}

	// Merge into the existing table when one is given, so reruns refresh
	// instead of replacing.
	base := scriptura.NameTable{}
	if c.Books != "" {
		if base, err = fs.NewNameTableStore(c.Books).Load(deps.Ctx); err != nil {
			return err
		}
	}
	base.Merge(table)

	if err := fs.NewNameTableStore(c.Out).Save(deps.Ctx, base); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d languages to %s in %.1fs (%d titles, %d skipped, %d failed)\n",
		len(base), c.Out, time.Since(started).Seconds(), result.Saved, result.Skipped, result.Failed)
	return nil
}
