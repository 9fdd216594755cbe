package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/sources"
	"github.com/spf13/cobra"
)

var (
	sourcesTable string
	sourcesJSON  bool
)

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the Source ID Registry",
	Long: `Sources lists the registry table mapping numeric source IDs to
author-year keys, authors, year, and title.

Example:
  citelint sources --table claims_matrix.md`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which registered sources have extracted text files",
	Long: `Status cross-references the Source ID Registry against the corpus
directory, resolving each author-year key the same way quote verification
does, and reports extraction coverage.

Example:
  citelint status --corpus literature/ExtractedText --table claims_matrix.md`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(statusCmd)

	sourcesCmd.Flags().StringVar(&sourcesTable, "table", "", "markdown file holding the Source ID Registry")
	sourcesCmd.Flags().BoolVar(&sourcesJSON, "json", false, "emit records as JSON")
	statusCmd.Flags().StringVar(&sourcesTable, "table", "", "markdown file holding the Source ID Registry")
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg := engineConfig()
	table := cfg.Corpus.SourcesTable
	if sourcesTable != "" {
		table = sourcesTable
	}

	records, err := sources.Load(table)
	if err != nil {
		return err
	}

	if sourcesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, rec := range records {
		fmt.Printf("%3d  %-18s %-6s %s\n", rec.SourceID, rec.AuthorYear, rec.Year, rec.Title)
	}
	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ %d sources\n", len(records))
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := engineConfig()
	table := cfg.Corpus.SourcesTable
	if sourcesTable != "" {
		table = sourcesTable
	}

	records, err := sources.Load(table)
	if err != nil {
		return err
	}

	store := corpus.NewStore(cfg.Corpus.Dir, cfg)
	if !store.Exists() {
		return fmt.Errorf("corpus directory not found: %s", cfg.Corpus.Dir)
	}
	files, err := store.ListFiles()
	if err != nil {
		return err
	}

	statuses := sources.CheckStatus(records, files)

	extracted := 0
	for _, st := range statuses {
		if st.Extracted {
			extracted++
			fmt.Printf("✓ %3d  %-18s %s\n", st.Record.SourceID, st.Record.AuthorYear, st.File)
		} else {
			fmt.Printf("✗ %3d  %-18s (no extracted text)\n", st.Record.SourceID, st.Record.AuthorYear)
		}
	}

	fmt.Fprintf(os.Stderr, "\nExtracted: %d/%d sources\n", extracted, len(statuses))
	return nil
}
