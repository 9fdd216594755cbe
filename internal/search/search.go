// Package search finds occurrences of a term across the corpus, exact
// first, then per-line word overlap.
package search

import (
	"strings"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/model"
	"github.com/citelint/citelint/internal/normalize"
	"github.com/citelint/citelint/internal/resolve"
)

const (
	// Minimum fraction of search words a line must contain to count as a
	// fuzzy hit.
	fuzzyLineThreshold = 0.70

	contextRadius = 2
)

// Engine searches corpus files for a term.
type Engine struct {
	store *corpus.Store
}

// NewEngine creates a search engine over the given corpus store.
func NewEngine(store *corpus.Store) *Engine {
	return &Engine{store: store}
}

// Search scans every corpus file (or only those matching authorFilter) for
// the term. Each file with hits yields one SearchResult; results follow the
// sorted directory order. Unreadable files are skipped rather than aborting
// the whole search.
func (e *Engine) Search(term, authorFilter string) ([]model.SearchResult, error) {
	files, err := e.store.ListFiles()
	if err != nil {
		return nil, err
	}
	if authorFilter != "" {
		files = resolve.FindCandidates(files, authorFilter)
	}

	normTerm := normalize.Plain(term)
	if normTerm == "" {
		return nil, nil
	}

	var results []model.SearchResult
	for _, name := range files {
		doc, err := e.store.Load(name)
		if err != nil {
			continue
		}

		matches := searchDocument(doc, normTerm)
		if len(matches) == 0 {
			continue
		}

		author, year := resolve.ParseFilename(name)
		results = append(results, model.SearchResult{
			File:    name,
			Author:  author,
			Year:    year,
			Matches: matches,
		})
	}

	return results, nil
}

// searchDocument finds every exact occurrence of the normalized term; if
// there are none, it falls back to scoring each line by word overlap.
func searchDocument(doc *corpus.Document, normTerm string) []model.SearchMatch {
	var matches []model.SearchMatch

	// Exact path: successive index hits, each advanced past the found span.
	offset := 0
	for {
		hit := strings.Index(doc.Normalized[offset:], normTerm)
		if hit < 0 {
			break
		}
		start := offset + hit
		line := doc.LineForOffset(start)
		matches = append(matches, makeMatch(doc, line))
		offset = start + len(normTerm)
	}
	if len(matches) > 0 {
		return matches
	}

	// Fuzzy path: fraction of search words each line contains.
	words := normalize.LongWords(normTerm)
	if len(words) == 0 {
		return nil
	}
	for i, raw := range doc.Lines {
		normLine := normalize.Plain(raw)
		found := 0
		for _, w := range words {
			if strings.Contains(normLine, w) {
				found++
			}
		}
		if float64(found)/float64(len(words)) >= fuzzyLineThreshold {
			matches = append(matches, makeMatch(doc, i))
		}
	}

	return matches
}

func makeMatch(doc *corpus.Document, line int) model.SearchMatch {
	return model.SearchMatch{
		LineNumber: line + 1,
		Text:       strings.TrimSpace(doc.Lines[line]),
		Context:    doc.Window(line, contextRadius),
	}
}
