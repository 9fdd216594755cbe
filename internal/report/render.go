package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/citelint/citelint/internal/model"
)

// WriteJSON writes the batch report as indented JSON. An empty path or "-"
// writes to stdout.
func WriteJSON(report *model.BatchReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteMarkdown writes a human-readable report.
func WriteMarkdown(report *model.BatchReport, path string) error {
	var b strings.Builder

	b.WriteString("# Quote Verification Report\n\n")
	fmt.Fprintf(&b, "- Total quotes: %d\n", report.TotalQuotes)
	fmt.Fprintf(&b, "- Verified: %d\n", report.VerifiedQuotes)
	fmt.Fprintf(&b, "- Flagged: %d\n\n", len(report.IncorrectQuotes))

	if len(report.MissingSourceFiles) > 0 {
		b.WriteString("## Missing Source Files\n\n")
		for _, authorYear := range report.MissingSourceFiles {
			fmt.Fprintf(&b, "- %s\n", authorYear)
		}
		b.WriteString("\n")
	}

	if len(report.IncorrectQuotes) > 0 {
		b.WriteString("## Flagged Quotes\n\n")
		for _, q := range report.IncorrectQuotes {
			fmt.Fprintf(&b, "### %s (%s, %s quote)\n\n", q.ClaimID, q.AuthorYear, strings.ToLower(string(q.QuoteType)))
			fmt.Fprintf(&b, "- File: %s, line %d\n", q.ClaimFile, q.QuoteLine)
			fmt.Fprintf(&b, "- Similarity: %.2f\n", q.Similarity)
			if q.SourceFile != "" {
				fmt.Fprintf(&b, "- Source: %s\n", q.SourceFile)
			}
			if q.Error != "" {
				fmt.Fprintf(&b, "- Error: %s\n", q.Error)
			}
			fmt.Fprintf(&b, "\n> %s\n\n", q.Quote)
			if q.NearestMatch != "" {
				fmt.Fprintf(&b, "Nearest passage:\n\n> %s\n\n", q.NearestMatch)
			}
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

// WriteSummary prints the batch summary box to w (normally stderr).
func WriteSummary(w io.Writer, report *model.BatchReport) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  Batch Verification Complete\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Total quotes:    %d\n", report.TotalQuotes)
	fmt.Fprintf(w, "  Verified:        %d\n", report.VerifiedQuotes)
	fmt.Fprintf(w, "  Flagged:         %d\n", len(report.IncorrectQuotes))
	fmt.Fprintf(w, "  Missing sources: %d\n", len(report.MissingSourceFiles))
	fmt.Fprintf(w, "\n")

	for _, authorYear := range report.MissingSourceFiles {
		fmt.Fprintf(w, "  ✗ no source file found for %s\n", authorYear)
	}
	if len(report.MissingSourceFiles) > 0 {
		fmt.Fprintf(w, "\n")
	}
}
