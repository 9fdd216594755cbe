package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/search"
	"github.com/spf13/cobra"
)

var (
	searchAuthor string
	searchJSON   bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find all occurrences of a phrase across the corpus",
	Long: `Search scans every extracted source text for a phrase, exact matches
first, then lines sharing at least 70% of the search words.

Example:
  citelint search "batch effects" --corpus literature/ExtractedText
  citelint search "empirical Bayes" --author Johnson2007
  citelint search "RNA-seq" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "restrict to sources matching this author-year key (e.g. Smith2020)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]
	cfg := engineConfig()

	store := corpus.NewStore(cfg.Corpus.Dir, cfg)
	if !store.Exists() {
		return fmt.Errorf("corpus directory not found: %s", cfg.Corpus.Dir)
	}

	engine := search.NewEngine(store)
	results, err := engine.Search(term, searchAuthor)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "No matches for %q\n", term)
		return nil
	}

	total := 0
	for _, result := range results {
		if result.Year != "" {
			fmt.Printf("%s (%s) — %s\n", result.Author, result.Year, result.File)
		} else {
			fmt.Printf("%s\n", result.File)
		}
		for _, m := range result.Matches {
			fmt.Printf("  line %d: %s\n", m.LineNumber, m.Text)
			total++
		}
		fmt.Println()
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ %d matches in %d files\n", total, len(results))
	}
	return nil
}
