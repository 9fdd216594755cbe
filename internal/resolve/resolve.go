// Package resolve maps human-typed author-year identifiers (e.g.
// "Johnson2007") to candidate corpus filenames.
package resolve

import (
	"regexp"
	"strings"

	"github.com/citelint/citelint/internal/normalize"
)

var (
	yearPattern     = regexp.MustCompile(`(\d{4})`)
	filenamePattern = regexp.MustCompile(`^(.+?)\s+-\s+(\d{4})`)
)

// MatchesAuthorYear reports whether a corpus filename plausibly belongs to
// the given author-year identifier. Checks run in order, first hit wins:
//
//  1. Folded filename contains the folded identifier.
//  2. The identifier must carry a 4-digit year, and the filename must
//     contain that year.
//  3. Any author word longer than two characters appears in the filename
//     (tolerates "et al.", middle names, initials).
//  4. Very short author names (<= 4 chars, e.g. "Du") require a whole-word
//     hit to avoid accidental substring collisions.
func MatchesAuthorYear(filename, authorYear string) bool {
	normFile := normalize.ForMatching(filename)
	normKey := normalize.ForMatching(authorYear)
	if normKey != "" && strings.Contains(normFile, normKey) {
		return true
	}

	year := yearPattern.FindString(authorYear)
	if year == "" {
		return false
	}
	if !strings.Contains(normFile, year) {
		return false
	}

	rawAuthor := strings.Replace(authorYear, year, "", 1)
	normAuthor := normalize.ForMatching(rawAuthor)
	for _, word := range normalize.LongWords(normAuthor) {
		if strings.Contains(normFile, word) {
			return true
		}
	}

	if len(strings.TrimSpace(rawAuthor)) <= 4 && normAuthor != "" {
		wholeWord := regexp.MustCompile(`\b` + regexp.QuoteMeta(normAuthor) + `\b`)
		return wholeWord.MatchString(normFile)
	}

	return false
}

// FindCandidates filters filenames down to those matching the identifier,
// preserving input order. Callers take the first candidate; the corpus
// store enumerates sorted by filename, so resolution is deterministic.
func FindCandidates(filenames []string, authorYear string) []string {
	var candidates []string
	for _, name := range filenames {
		if MatchesAuthorYear(name, authorYear) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

// ParseFilename extracts display author and year from the
// "<Author> - <Year> <Title>" filename convention. Filenames that do not
// follow it yield the whole name as author and an empty year.
func ParseFilename(filename string) (author, year string) {
	if m := filenamePattern.FindStringSubmatch(filename); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return filename, ""
}
