package crawl

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"scriptura"
)

// LabelCrawler recovers localized "chapter" labels, one fetch per language.
type LabelCrawler struct {
	Titles scriptura.TitleService

	// Limiter, when set, throttles upstream fetches across all workers.
	Limiter *rate.Limiter

	// Concurrency bounds parallel fetches. Defaults to DefaultConcurrency.
	Concurrency int
}

type labelResult struct {
	lang  string
	label string
	err   error
}

// Crawl fetches a chapter label for every language and returns the
// recovered labels keyed by language code. Languages without a recoverable
// label are skipped, not failed.
func (c *LabelCrawler) Crawl(ctx context.Context, langs []string, progress ProgressFunc) (map[string]string, *Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(langs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan labelResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for _, lang := range langs {
			lang := lang
			g.Go(func() error {
				resultCh <- c.crawlOne(gctx, lang)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	labels := make(map[string]string)
	result := &Result{}
	completed := 0
	for r := range resultCh {
		completed++

		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, Key: r.lang, Error: r.err})
			}
			continue
		}

		if r.label != "" {
			labels[r.lang] = r.label
			result.Saved++
		} else {
			result.Skipped++
		}
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Key: r.lang})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return labels, result, nil
}

func (c *LabelCrawler) crawlOne(ctx context.Context, lang string) labelResult {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return labelResult{lang: lang, err: err}
		}
	}

	label, err := c.Titles.ChapterLabel(ctx, lang)
	if err != nil {
		return labelResult{lang: lang, err: err}
	}
	return labelResult{lang: lang, label: label}
}
