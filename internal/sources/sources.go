// Package sources parses the Source ID Registry: a pipe-delimited markdown
// table mapping numeric source IDs to author-year keys and bibliographic
// fields.
package sources

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/citelint/citelint/internal/model"
)

var registryHeading = regexp.MustCompile(`(?m)^## Source ID Registry\s*$`)

// Load reads and parses the sources table from a markdown file.
func Load(path string) ([]model.SourceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources table: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse extracts source records from markdown content. When a
// "## Source ID Registry" heading exists, parsing is scoped to that
// section; otherwise the whole content is scanned. Rows whose ID cell is
// not all digits (headers, separators, signed numbers) are ignored.
func Parse(content string) []model.SourceRecord {
	if loc := registryHeading.FindStringIndex(content); loc != nil {
		section := content[loc[1]:]
		if next := strings.Index(section, "\n## "); next >= 0 {
			section = section[:next]
		}
		content = section
	}

	var records []model.SourceRecord
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 7 {
			continue
		}

		idCell := strings.TrimSpace(parts[1])
		if !allDigits(idCell) {
			continue
		}
		id, err := strconv.Atoi(idCell)
		if err != nil {
			continue
		}

		records = append(records, model.SourceRecord{
			SourceID:   id,
			AuthorYear: strings.TrimSpace(parts[2]),
			Authors:    strings.TrimSpace(parts[3]),
			Year:       strings.TrimSpace(parts[4]),
			Title:      strings.TrimSpace(parts[5]),
		})
	}

	return records
}

// allDigits reports whether s is non-empty and consists only of ASCII
// digits. Signed forms ("+1", "-5") are not valid ID cells.
func allDigits(s string) bool {
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
