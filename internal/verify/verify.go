// Package verify checks whether a quote attributed to an author-year
// source actually occurs in that source's extracted text.
package verify

import (
	"fmt"
	"strings"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/model"
	"github.com/citelint/citelint/internal/normalize"
	"github.com/citelint/citelint/internal/resolve"
)

const (
	// FuzzyThreshold is the word-overlap fraction at which an approximate
	// match counts as verified. The sliding-window scan stops at the first
	// window reaching it (accept-and-stop, not globally best).
	FuzzyThreshold = 0.85

	contextLines      = 2
	maxAvailableFiles = 10
)

// Verifier checks quotes against the corpus. It holds no state beyond the
// store; every call re-resolves and re-reads.
type Verifier struct {
	store *corpus.Store
}

// NewVerifier creates a verifier over the given corpus store.
func NewVerifier(store *corpus.Store) *Verifier {
	return &Verifier{store: store}
}

// VerifyQuote determines whether the quote is present verbatim or
// approximately in the first corpus file matching authorYear. "Not
// verified" is a normal result; only a missing directory, a missing
// source, or a read failure populate Error.
func (v *Verifier) VerifyQuote(quote, authorYear string) model.VerificationResult {
	if !v.store.Exists() {
		return model.VerificationResult{
			Error:             fmt.Sprintf("corpus directory not found: %s", v.store.Dir()),
			SearchedDirectory: v.store.Dir(),
		}
	}

	files, err := v.store.ListFiles()
	if err != nil {
		return model.VerificationResult{
			Error:             fmt.Sprintf("list corpus files: %v", err),
			SearchedDirectory: v.store.Dir(),
		}
	}

	candidates := resolve.FindCandidates(files, authorYear)
	if len(candidates) == 0 {
		sample := files
		if len(sample) > maxAvailableFiles {
			sample = sample[:maxAvailableFiles]
		}
		return model.VerificationResult{
			Error:             fmt.Sprintf("no source file found for %s", authorYear),
			SearchedDirectory: v.store.Dir(),
			AvailableFiles:    sample,
		}
	}

	// First match in sorted directory order wins; no scoring across
	// candidates.
	name := candidates[0]
	doc, err := v.store.Load(name)
	if err != nil {
		return model.VerificationResult{
			SourceFile: name,
			Error:      fmt.Sprintf("read source file %s: %v", name, err),
		}
	}

	normQuote := normalize.Plain(quote)
	if normQuote == "" {
		return model.VerificationResult{SourceFile: name}
	}

	if result, ok := v.exactMatch(doc, quote, normQuote); ok {
		return result
	}
	return v.fuzzyMatch(doc, normQuote)
}

// exactMatch looks for the normalized quote as a substring of the
// normalized content and maps the hit back to original lines.
func (v *Verifier) exactMatch(doc *corpus.Document, quote, normQuote string) (model.VerificationResult, bool) {
	start := strings.Index(doc.Normalized, normQuote)
	if start < 0 {
		return model.VerificationResult{}, false
	}

	end := start + len(normQuote)
	startLine := doc.LineForOffset(start)
	endLine := doc.LineForOffset(end)

	return model.VerificationResult{
		Verified:      true,
		Similarity:    1.0,
		SourceFile:    doc.Name,
		MatchedText:   quote,
		ContextBefore: doc.LinesBefore(startLine, contextLines),
		ContextAfter:  doc.LinesAfter(endLine, contextLines),
	}, true
}

// fuzzyMatch slides a window of the quote's word count over the content's
// word sequence, scoring each position by the fraction of quote words the
// window contains, and stops at the first window reaching FuzzyThreshold.
func (v *Verifier) fuzzyMatch(doc *corpus.Document, normQuote string) model.VerificationResult {
	quoteWords := strings.Fields(normQuote)
	contentWords := doc.Words()
	if len(quoteWords) == 0 || len(contentWords) == 0 {
		return model.VerificationResult{SourceFile: doc.Name}
	}

	windowSize := len(quoteWords)
	if windowSize > len(contentWords) {
		windowSize = len(contentWords)
	}

	bestSim := 0.0
	bestPos := -1
	for pos := 0; pos+windowSize <= len(contentWords); pos++ {
		window := make(map[string]bool, windowSize)
		for _, w := range contentWords[pos : pos+windowSize] {
			window[w] = true
		}

		found := 0
		for _, w := range quoteWords {
			if window[w] {
				found++
			}
		}

		sim := float64(found) / float64(len(quoteWords))
		if sim > bestSim {
			bestSim = sim
			bestPos = pos
		}
		if sim >= FuzzyThreshold {
			break
		}
	}

	if bestPos < 0 || bestSim == 0 {
		return model.VerificationResult{SourceFile: doc.Name}
	}

	startLine := doc.LineForWord(bestPos)
	endLine := doc.LineForWord(bestPos + windowSize - 1)
	windowText := strings.Join(contentWords[bestPos:bestPos+windowSize], " ")

	return model.VerificationResult{
		Verified:      bestSim >= FuzzyThreshold,
		Similarity:    bestSim,
		SourceFile:    doc.Name,
		MatchedText:   windowText,
		NearestMatch:  doc.LineSpan(startLine, endLine),
		ContextBefore: doc.LinesBefore(startLine, contextLines),
		ContextAfter:  doc.LinesAfter(endLine, contextLines),
	}
}
