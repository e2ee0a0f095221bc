package scriptura

// ChapterKey is the reserved name-table key holding a language's localized
// word for "chapter", alongside the per-slug titles.
const ChapterKey = "chapter"

// NameTable maps a language code to its localized book titles by slug. The
// reserved ChapterKey entry carries the localized "chapter" word. The table
// is read-only to the core; the batch crawlers write it.
type NameTable map[string]map[string]string

// Title returns the localized title for a slug in lang.
func (t NameTable) Title(lang, slug string) (string, bool) {
	entries, ok := t[lang]
	if !ok {
		return "", false
	}
	title, ok := entries[slug]
	return title, ok
}

// Set records a value for a language key, creating the language block as
// needed.
func (t NameTable) Set(lang, key, value string) {
	entries, ok := t[lang]
	if !ok {
		entries = make(map[string]string)
		t[lang] = entries
	}
	entries[key] = value
}

// Merge copies every entry of other into t, overwriting duplicates.
func (t NameTable) Merge(other NameTable) {
	for lang, entries := range other {
		for key, value := range entries {
			t.Set(lang, key, value)
		}
	}
}
