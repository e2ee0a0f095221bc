package goquery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptura"
	"scriptura/goquery"
	"scriptura/mock"
)

func TestTitleService_BookTitle(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from chapter one page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			assert.Equal(t, scriptura.BookTitleURL("alma", "por"), url)
			return `<html><body><h1>Alma 1</h1></body></html>`, nil
		}}

		title, err := goquery.NewTitleService(fetcher).BookTitle(context.Background(), "alma", "por")
		require.NoError(t, err)
		assert.Equal(t, "Alma", title)
	})

	t.Run("missing language maps to the not-available sentinel", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", scriptura.Errorf(scriptura.ENOTFOUND, "no such page")
		}}

		title, err := goquery.NewTitleService(fetcher).BookTitle(context.Background(), "alma", "zz")
		require.NoError(t, err)
		assert.Equal(t, scriptura.NotAvailable, title)
	})

	t.Run("transient failure surfaces", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", scriptura.Errorf(scriptura.EUNAVAILABLE, "timeout")
		}}

		_, err := goquery.NewTitleService(fetcher).BookTitle(context.Background(), "alma", "por")
		assert.Equal(t, scriptura.EUNAVAILABLE, scriptura.ErrorCode(err))
	})
}

func TestTitleService_ChapterLabel(t *testing.T) {
	t.Parallel()

	t.Run("recovers the label from the heading", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			assert.Equal(t, scriptura.LabelURL("spa"), url)
			return `<html><body><p class="title-number">Capítulo 1</p></body></html>`, nil
		}}

		label, err := goquery.NewTitleService(fetcher).ChapterLabel(context.Background(), "spa")
		require.NoError(t, err)
		assert.Equal(t, "Capítulo", label)
	})

	t.Run("missing language yields empty label without error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", scriptura.Errorf(scriptura.ENOTFOUND, "no such page")
		}}

		label, err := goquery.NewTitleService(fetcher).ChapterLabel(context.Background(), "zz")
		require.NoError(t, err)
		assert.Empty(t, label)
	})
}

func TestChapterService_Verses(t *testing.T) {
	t.Parallel()

	t.Run("returns verses from the chapter page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			assert.Equal(t, scriptura.ChapterURL("1-ne", 3, "eng"), url)
			return `<html><body><p class="verse"><span class="verse-number">7</span>I will go and do.</p></body></html>`, nil
		}}

		verses, err := goquery.NewChapterService(fetcher).Verses(context.Background(), "1-ne", 3, "eng")
		require.NoError(t, err)
		require.Len(t, verses, 1)
		assert.Equal(t, scriptura.Verse{Number: "7", Text: "I will go and do."}, verses[0])
	})

	t.Run("fetch failure surfaces", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", scriptura.Errorf(scriptura.EUNAVAILABLE, "upstream down")
		}}

		_, err := goquery.NewChapterService(fetcher).Verses(context.Background(), "1-ne", 3, "eng")
		assert.Equal(t, scriptura.EUNAVAILABLE, scriptura.ErrorCode(err))
	})
}

func TestChapterService_Intro(t *testing.T) {
	t.Parallel()

	t.Run("only the first chapter of the first book is fetched", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			t.Fatalf("unexpected fetch of %s", url)
			return "", nil
		}}

		intro, err := goquery.NewChapterService(fetcher).Intro(context.Background(), "alma", 5, "eng")
		require.NoError(t, err)
		assert.Equal(t, scriptura.ChapterIntro{}, intro)
	})

	t.Run("extracts the intro blocks", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return `<html><body>
				<p class="subtitle">His reign and ministry.</p>
				<p class="intro">An account of Lehi.</p>
			</body></html>`, nil
		}}

		intro, err := goquery.NewChapterService(fetcher).Intro(context.Background(), "1-ne", 1, "eng")
		require.NoError(t, err)
		assert.Equal(t, "His reign and ministry.", intro.Subtitle)
		assert.Equal(t, "An account of Lehi.", intro.Introduction)
	})

	t.Run("fetch failure is absorbed", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", scriptura.Errorf(scriptura.EUNAVAILABLE, "upstream down")
		}}

		intro, err := goquery.NewChapterService(fetcher).Intro(context.Background(), "1-ne", 1, "eng")
		require.NoError(t, err)
		assert.Equal(t, scriptura.ChapterIntro{}, intro)
	})
}
