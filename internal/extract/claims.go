// Package extract parses claim-record markdown into a flat list of quotes
// to verify. The parser is a small line-oriented state machine: claim
// headers and source lines set context, blockquote runs accumulate into a
// buffer, and any other line flushes the open block.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/citelint/citelint/internal/model"
)

var (
	headerPattern = regexp.MustCompile(`^## (C_\d+[a-z]?):\s*(.+)$`)
	sourcePattern = regexp.MustCompile(`\*\*Source\*\*:\s*(\w+\d{4})`)
)

// QuoteExtractor parses claim records into ClaimQuote values.
type QuoteExtractor struct{}

// NewQuoteExtractor creates a quote extractor.
func NewQuoteExtractor() *QuoteExtractor {
	return &QuoteExtractor{}
}

// parserState carries the extraction state machine between lines.
type parserState struct {
	claimID    string
	claimTitle string
	authorYear string
	quoteType  model.QuoteType
	inQuote    bool
	buffer     []string
	quoteStart int // 1-indexed line of the first "> " in the open block
}

// Extract runs the state machine over one claim record's content. Quotes
// with an empty buffer, missing author-year, or missing claim id are
// dropped silently; that leniency is the contract, not a failure.
func (e *QuoteExtractor) Extract(sourceFile, content string) []model.ClaimQuote {
	var quotes []model.ClaimQuote
	st := parserState{quoteType: model.QuotePrimary}

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case headerPattern.MatchString(line):
			// Hard reset of claim context; an open quote block stays open
			// and will be dropped at flush for lack of an author-year.
			m := headerPattern.FindStringSubmatch(line)
			st.claimID = m[1]
			st.claimTitle = strings.TrimSpace(m[2])
			st.authorYear = ""

		case sourcePattern.MatchString(line):
			st.authorYear = sourcePattern.FindStringSubmatch(line)[1]

		case strings.Contains(line, "**Primary Quote**"):
			st.quoteType = model.QuotePrimary

		case strings.Contains(line, "**Supporting Quotes**"):
			st.quoteType = model.QuoteSupporting

		case strings.HasPrefix(trimmed, ">") && !st.inQuote:
			st.inQuote = true
			st.quoteStart = i + 1
			st.buffer = []string{stripQuoteMarker(trimmed)}

		case strings.HasPrefix(trimmed, ">"):
			st.buffer = append(st.buffer, stripQuoteMarker(trimmed))

		case st.inQuote:
			quotes = flush(&st, sourceFile, quotes)
		}
	}

	if st.inQuote {
		quotes = flush(&st, sourceFile, quotes)
	}

	return quotes
}

// flush closes the open quote block, emitting a record when the buffer,
// author-year, and claim id are all present.
func flush(st *parserState, sourceFile string, quotes []model.ClaimQuote) []model.ClaimQuote {
	text := joinQuoteLines(st.buffer)
	if text != "" && st.authorYear != "" && st.claimID != "" {
		quotes = append(quotes, model.ClaimQuote{
			ClaimID:    st.claimID,
			ClaimTitle: st.claimTitle,
			AuthorYear: st.authorYear,
			Quote:      stripOuterQuotes(text),
			QuoteType:  st.quoteType,
			LineNumber: st.quoteStart,
			SourceFile: sourceFile,
		})
	}
	st.inQuote = false
	st.buffer = nil
	return quotes
}

// ExtractFile parses a single claim-record file.
func (e *QuoteExtractor) ExtractFile(path string) ([]model.ClaimQuote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claim record: %w", err)
	}
	return e.Extract(filepath.Base(path), string(data)), nil
}

// ExtractAll parses the claim corpus: a directory of per-claim markdown
// files when it exists, otherwise the legacy single file. Directory files
// are processed in sorted order so extraction order is stable.
func (e *QuoteExtractor) ExtractAll(claimsDir, legacyFile string) ([]model.ClaimQuote, error) {
	if info, err := os.Stat(claimsDir); err == nil && info.IsDir() {
		entries, err := os.ReadDir(claimsDir)
		if err != nil {
			return nil, fmt.Errorf("read claims directory: %w", err)
		}

		var names []string
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)

		var quotes []model.ClaimQuote
		for _, name := range names {
			fileQuotes, err := e.ExtractFile(filepath.Join(claimsDir, name))
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, fileQuotes...)
		}
		return quotes, nil
	}

	if _, err := os.Stat(legacyFile); err == nil {
		return e.ExtractFile(legacyFile)
	}

	return nil, fmt.Errorf("no claim records found: neither %s nor %s exists", claimsDir, legacyFile)
}

// stripQuoteMarker removes one leading ">" and surrounding whitespace from
// a trimmed blockquote line.
func stripQuoteMarker(trimmed string) string {
	return strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
}

// joinQuoteLines joins continuation lines with a single space. Empty
// blockquote lines (">") contribute no text and are skipped, so the
// joined quote stays single-spaced; content normalization would collapse
// the extra spaces anyway.
func joinQuoteLines(lines []string) string {
	var parts []string
	for _, l := range lines {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

const quoteRunes = `"'` + "“”‘’"

// stripOuterQuotes removes a single pair of surrounding smart or straight
// quote characters.
func stripOuterQuotes(s string) string {
	runes := []rune(s)
	if len(runes) >= 2 &&
		strings.ContainsRune(quoteRunes, runes[0]) &&
		strings.ContainsRune(quoteRunes, runes[len(runes)-1]) {
		return strings.TrimSpace(string(runes[1 : len(runes)-1]))
	}
	return s
}
