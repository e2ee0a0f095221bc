package crawl

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"scriptura"
)

// NameCrawler crawls localized book titles for a set of languages, one
// fetch per language and slug.
type NameCrawler struct {
	Titles scriptura.TitleService

	// Limiter, when set, throttles upstream fetches across all workers.
	Limiter *rate.Limiter

	// Concurrency bounds parallel fetches. Defaults to DefaultConcurrency.
	Concurrency int
}

type nameResult struct {
	lang  string
	slug  string
	title string
	err   error
}

// Crawl fetches a title for every language and slug pair and merges the
// hits into a new name table. Completion order is irrelevant: results are
// keyed by (language, slug). Individual failures are counted and skipped.
func (c *NameCrawler) Crawl(ctx context.Context, langs []string, progress ProgressFunc) (scriptura.NameTable, *Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type job struct{ lang, slug string }
	jobs := make([]job, 0, len(langs)*len(scriptura.BookSlugs))
	for _, lang := range langs {
		for _, slug := range scriptura.BookSlugs {
			jobs = append(jobs, job{lang: lang, slug: slug})
		}
	}

	total := len(jobs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan nameResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for _, j := range jobs {
			j := j
			g.Go(func() error {
				resultCh <- c.crawlOne(gctx, j.lang, j.slug)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	table := scriptura.NameTable{}
	result := &Result{}
	completed := 0
	for r := range resultCh {
		completed++
		key := r.lang + "/" + r.slug

		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, Key: key, Error: r.err})
			}
			continue
		}

		if r.title != "" {
			table.Set(r.lang, r.slug, r.title)
			result.Saved++
		} else {
			result.Skipped++
		}
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Key: key})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return table, result, nil
}

func (c *NameCrawler) crawlOne(ctx context.Context, lang, slug string) nameResult {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nameResult{lang: lang, slug: slug, err: err}
		}
	}

	title, err := c.Titles.BookTitle(ctx, slug, lang)
	if err != nil {
		return nameResult{lang: lang, slug: slug, err: err}
	}

	// Sentinels are not real titles; record nothing for them.
	if title == scriptura.NotAvailable || title == scriptura.UnknownTitle {
		title = ""
	}
	return nameResult{lang: lang, slug: slug, title: title}
}
