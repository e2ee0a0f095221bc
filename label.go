package scriptura

import (
	"regexp"
	"strings"
)

// cjkHangulRanges are the code-point ranges treated as ideographic or
// hangul for chapter-label recovery. Kept as data so new scripts can be
// added without touching the extraction logic.
var cjkHangulRanges = []struct{ lo, hi rune }{
	{0x4E00, 0x9FFF}, // CJK Unified Ideographs: 章
	{0x3400, 0x4DBF}, // CJK Extension A
	{0x3040, 0x30FF}, // Hiragana and Katakana
	{0xAC00, 0xD7AF}, // Hangul Syllables: 장
}

// IsCJKOrHangul reports whether r falls in an ideographic or hangul range.
func IsCJKOrHangul(r rune) bool {
	for _, rng := range cjkHangulRanges {
		if r >= rng.lo && r <= rng.hi {
			return true
		}
	}
	return false
}

func containsCJKOrHangul(s string) bool {
	for _, r := range s {
		if IsCJKOrHangul(r) {
			return true
		}
	}
	return false
}

var (
	// labelSuffixRe captures 1-3 characters following a digit run that sit
	// outside the Latin, Latin-extended, Greek, and Cyrillic ranges:
	// "第 1 章" and "1장" capture "章" and "장".
	labelSuffixRe = regexp.MustCompile(`[0-9]+\s*([^\s0-9A-Za-z\x{00C0}-\x{024F}\x{0370}-\x{03FF}\x{0400}-\x{04FF}]{1,3})`)

	// labelPrefixRe captures the non-digit run before a trailing number:
	// "Capítulo 1" captures "Capítulo".
	labelPrefixRe = regexp.MustCompile(`^\s*([^0-9]+?)\s*[0-9]+\s*$`)

	digitRunRe = regexp.MustCompile(`[0-9]+`)
)

// LabelFromHeading recovers the localized word for "chapter" from the text
// of a chapter heading ("CHAPTER 1", "Capítulo 1", "第 1 章", "1장").
// Heuristics run in order, first match wins:
//
//  1. A short non-Latin cluster after the digit run, when it contains a
//     CJK or hangul code point (ideographic suffix labels).
//  2. The non-digit run before a trailing number (Latin-style "Word N").
//  3. After stripping digits, the last CJK or hangul code point.
//  4. The first whitespace-delimited token of the digit-stripped remainder.
//
// Returns an empty string when nothing matches; callers must tolerate a
// language having no recovered label.
func LabelFromHeading(text string) string {
	t := CleanSpaces(text)
	if t == "" {
		return ""
	}

	if m := labelSuffixRe.FindStringSubmatch(t); m != nil {
		if suf := CleanSpaces(m[1]); suf != "" && containsCJKOrHangul(suf) {
			return suf
		}
	}

	if m := labelPrefixRe.FindStringSubmatch(t); m != nil {
		return CleanSpaces(m[1])
	}

	t = CleanSpaces(digitRunRe.ReplaceAllString(t, " "))
	var cjk []rune
	for _, r := range t {
		if IsCJKOrHangul(r) {
			cjk = append(cjk, r)
		}
	}
	if len(cjk) > 0 {
		return string(cjk[len(cjk)-1])
	}
	if fields := strings.Fields(t); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
