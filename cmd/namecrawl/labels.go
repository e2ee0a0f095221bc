package main

import (
	"fmt"

	"scriptura"
	"scriptura/crawl"
	"scriptura/fs"
	"scriptura/goquery"
	scripturahttp "scriptura/http"
)

// Run executes the labels command.
func (c *LabelsCmd) Run(deps *Dependencies) error {
	codes, err := crawl.LoadLanguageCodes(c.Languages, c.Langs)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return scriptura.Errorf(scriptura.EINVALID, "no language codes to process")
	}

	fetcher := scripturahttp.NewFetcher(scripturahttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	crawler := &crawl.LabelCrawler{
		Titles:      goquery.NewTitleService(fetcher),
		Concurrency: c.Concurrency,
	}

	labels, result, err := crawler.Crawl(deps.Ctx, codes, progressPrinter(deps.Stderr))
	if err != nil {
		return err
	}

	base := scriptura.NameTable{}
	if c.Books != "" {
		if base, err = fs.NewNameTableStore(c.Books).Load(deps.Ctx); err != nil {
			return err
		}
	}
	for lang, label := range labels {
		base.Set(lang, scriptura.ChapterKey, label)
	}

	if err := fs.NewNameTableStore(c.Out).Save(deps.Ctx, base); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s with %d chapter labels (%d skipped, %d failed)\n",
		c.Out, result.Saved, result.Skipped, result.Failed)
	return nil
}
