// Package normalize provides the two text normalization strategies used by
// every matching operation: plain (whitespace/case folding) for content
// search, and matching (plus diacritic stripping) for filename and author
// comparison.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordChar   = regexp.MustCompile(`[^\w\s]`)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Plain collapses whitespace runs to a single space, trims, and lowercases.
// Total: never fails, whitespace-only input yields "".
func Plain(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " ")))
}

// ForMatching folds text for filename/author comparison: lowercase, NFD
// decompose and strip combining marks (so "Jöhnson" matches "Johnson"),
// replace punctuation with spaces, collapse whitespace, trim.
func ForMatching(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	folded = nonWordChar.ReplaceAllString(folded, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(folded, " "))
}

// LongWords splits already-normalized text into words of length > 2.
// Short tokens ("et", "al", initials) carry no matching signal.
func LongWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
