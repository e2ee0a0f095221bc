package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scriptura"
	"scriptura/goquery"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("contentTitle outranks h1", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
			<span class="contentTitle-abc123"><div>Primeiro Livro de Néfi</div></span>
			<h1>Wrong Title</h1>
		</body></html>`)
		assert.Equal(t, "Primeiro Livro de Néfi", goquery.ExtractTitle(doc))
	})

	t.Run("dominant span inside h1", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><h1><span class="dominant">Alma</span><span>filler</span></h1></body></html>`)
		assert.Equal(t, "Alma", goquery.ExtractTitle(doc))
	})

	t.Run("bare h1 fallback", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><h1>Words of Mormon</h1></body></html>`)
		assert.Equal(t, "Words of Mormon", goquery.ExtractTitle(doc))
	})

	t.Run("og title meta fallback", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head><meta property="og:title" content="Mosiah"></head><body></body></html>`)
		assert.Equal(t, "Mosiah", goquery.ExtractTitle(doc))
	})

	t.Run("no strategy matches yields unknown sentinel", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><p>nothing here</p></body></html>`)
		assert.Equal(t, scriptura.UnknownTitle, goquery.ExtractTitle(doc))
	})

	t.Run("strips leaked leading chapter phrase", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><h1>Capítulo 1 Primeiro Livro de Néfi</h1></body></html>`)
		assert.Equal(t, "Primeiro Livro de Néfi", goquery.ExtractTitle(doc))
	})

	t.Run("strips leaked trailing chapter number", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><h1>1 Nephi 1</h1></body></html>`)
		assert.Equal(t, "1 Nephi", goquery.ExtractTitle(doc))
	})
}
