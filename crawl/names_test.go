package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"scriptura"
	"scriptura/crawl"
	"scriptura/mock"
)

func TestNameCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("merges titles keyed by language and slug", func(t *testing.T) {
		t.Parallel()

		titles := &mock.TitleService{
			BookTitleFn: func(ctx context.Context, slug, lang string) (string, error) {
				switch {
				case lang == "spa" && slug == "alma":
					return "", scriptura.Errorf(scriptura.EUNAVAILABLE, "upstream down")
				case lang == "eng" && slug == "moro":
					return scriptura.NotAvailable, nil
				}
				return lang + " " + slug, nil
			},
			ChapterLabelFn: func(ctx context.Context, lang string) (string, error) {
				return "", nil
			},
		}

		crawler := &crawl.NameCrawler{Titles: titles, Concurrency: 4}
		table, result, err := crawler.Crawl(context.Background(), []string{"eng", "spa"}, nil)
		require.NoError(t, err)

		total := 2 * len(scriptura.BookSlugs)
		assert.Equal(t, total-2, result.Saved)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 1, result.Failed)

		title, ok := table.Title("eng", "1-ne")
		assert.True(t, ok)
		assert.Equal(t, "eng 1-ne", title)

		_, ok = table.Title("spa", "alma")
		assert.False(t, ok)
		_, ok = table.Title("eng", "moro")
		assert.False(t, ok)
	})

	t.Run("reports progress events in collector order", func(t *testing.T) {
		t.Parallel()

		titles := &mock.TitleService{
			BookTitleFn: func(ctx context.Context, slug, lang string) (string, error) {
				if slug == "ether" {
					return "", scriptura.Errorf(scriptura.EUNAVAILABLE, "upstream down")
				}
				return "Title", nil
			},
			ChapterLabelFn: func(ctx context.Context, lang string) (string, error) {
				return "", nil
			},
		}

		var events []crawl.ProgressEvent
		crawler := &crawl.NameCrawler{Titles: titles, Concurrency: 3}
		_, result, err := crawler.Crawl(context.Background(), []string{"eng"}, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})
		require.NoError(t, err)

		total := len(scriptura.BookSlugs)
		require.Len(t, events, total+2)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, total, events[0].Total)
		assert.Equal(t, crawl.ProgressFinished, events[len(events)-1].Type)

		var completed, failed int
		for _, e := range events[1 : len(events)-1] {
			switch e.Type {
			case crawl.ProgressCompleted:
				completed++
			case crawl.ProgressFailed:
				failed++
				assert.Equal(t, "eng/ether", e.Key)
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, result.Saved+result.Skipped, completed)
		assert.Equal(t, result.Failed, failed)
		assert.Equal(t, 1, failed)
	})

	t.Run("honors the rate limiter on a canceled context", func(t *testing.T) {
		t.Parallel()

		titles := &mock.TitleService{
			BookTitleFn: func(ctx context.Context, slug, lang string) (string, error) {
				return "Title", nil
			},
			ChapterLabelFn: func(ctx context.Context, lang string) (string, error) {
				return "", nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Every permit wait fails on the dead context, so every job fails
		// but the run itself still completes.
		crawler := &crawl.NameCrawler{
			Titles:      titles,
			Limiter:     rate.NewLimiter(rate.Limit(1), 1),
			Concurrency: 2,
		}
		table, result, err := crawler.Crawl(ctx, []string{"eng"}, nil)
		require.NoError(t, err)
		assert.Empty(t, table)
		assert.Equal(t, len(scriptura.BookSlugs), result.Failed)
	})
}
