package scriptura

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// spaceReplacer maps NBSP (U+00A0) and thin space (U+202F) to ordinary
// space and drops the stray U+00C2 artifact that mojibake leaves behind.
var spaceReplacer = strings.NewReplacer("\u00a0", " ", "\u202f", " ", "\u00c2", "")

// CleanSpaces normalizes NBSP and thin-space code points to ordinary
// spaces, removes stray U+00C2 artifacts, collapses whitespace runs, and
// trims the ends. It is idempotent and never lengthens its input.
func CleanSpaces(s string) string {
	return strings.Join(strings.Fields(spaceReplacer.Replace(s)), " ")
}

// Demojibake repairs the common "Ã¼/Ã¤/Ã¶/ÃŸ" style corruption produced
// when UTF-8 bytes were decoded as Latin-1. It re-encodes the string back to
// bytes under the Latin-1 assumption and re-decodes as UTF-8, discarding
// bytes that survive neither step. Text without the telltale pattern is
// returned unchanged, so correctly-encoded input is never altered and the
// function is idempotent on already-fixed text.
func Demojibake(s string) string {
	if !hasMojibake(s) {
		return s
	}
	raw := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			raw = append(raw, b)
		}
	}
	return strings.ToValidUTF8(string(raw), "")
}

// hasMojibake reports whether s contains a Latin-1 lead-byte character
// ('Ã' U+00C3 or 'Â' U+00C2) followed by a character in the UTF-8
// continuation-byte range U+0080..U+00BF. Correctly-encoded text never
// pairs these.
func hasMojibake(s string) bool {
	var prev rune
	for _, r := range s {
		if (prev == '\u00c3' || prev == '\u00c2') && r >= '\u0080' && r <= '\u00bf' {
			return true
		}
		prev = r
	}
	return false
}

// StripTrailingChapterNumber drops a final whitespace-delimited token made
// entirely of decimal digits. Some locales leak a lonely trailing "1" after
// the book title.
func StripTrailingChapterNumber(s string) string {
	parts := strings.Fields(s)
	if len(parts) > 0 && isASCIIDigits(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// chapterWords are localized words meaning "Chapter" that upstream pages
// leak into title positions as "Chapter 1 " style prefixes.
var chapterWords = []string{
	// English & Romance
	"chapter", "capítulo", "capitulo", "chapitre", "capitolo", "capítol",
	// Germanic / Nordic
	"kapitel", "kapittel", "hoofstuk", "hoofdstuk",
	// Slavic (romanized) and Cyrillic
	"glava", "глава", "глава́", "раздел",
	// Misc variants
	"cap",
}

var (
	dashSplitRe     = regexp.MustCompile(`\s+[—–-]\s+`)
	chapterPhraseRe = compileChapterPhraseRe()
)

// compileChapterPhraseRe builds the leading chapter-phrase matcher. Words
// are alternated longest-first so "capítulo" is never cut short by "cap".
func compileChapterPhraseRe() *regexp.Regexp {
	words := make([]string, len(chapterWords))
	for i, w := range chapterWords {
		words[i] = regexp.QuoteMeta(w)
	}
	sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(words, "|") + `)\s*[0-9]+\s+`)
}

// StripLeadingChapterPhrase removes a leading "Chapter 1 " / "Capítulo 1 "
// prefix when a page puts the chapter heading where the book title belongs.
// Any summary following an em/en/normal dash is dropped first, so the
// phrase match runs against the bare title only.
func StripLeadingChapterPhrase(s string) string {
	t := CleanSpaces(s)
	if loc := dashSplitRe.FindStringIndex(t); loc != nil {
		t = t[:loc[0]]
	}
	return strings.TrimSpace(chapterPhraseRe.ReplaceAllString(t, ""))
}

// prePunctRe matches whitespace preceding closing punctuation that must hug
// the text before it: , . ; : ! ? … ) ] } ” ’ †
var prePunctRe = regexp.MustCompile(`\s+([,.;:!?…)\]}”’†])`)

// TightenPunctuation removes whitespace before closing punctuation, fixing
// the " ," and " ." artifacts that verse markup removal leaves behind.
func TightenPunctuation(s string) string {
	return prePunctRe.ReplaceAllString(s, "$1")
}
