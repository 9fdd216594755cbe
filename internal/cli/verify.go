package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/verify"
	"github.com/spf13/cobra"
)

var (
	verifySource string
	verifyJSON   bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <quote>",
	Short: "Verify that a single quote occurs in its cited source",
	Long: `Verify checks one quote against the first corpus file matching the
given author-year key. The quote is verified when it occurs verbatim
(after whitespace and case normalization) or when a sliding word window
reaches 85% overlap; otherwise the nearest passage is reported.

Example:
  citelint verify "major confound in RNA-seq" --source Johnson2007
  citelint verify "batch effects are ubiquitous" --source Leek2010 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifySource, "source", "", "author-year key of the cited source (e.g. Johnson2007)")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "emit the result as JSON")
	_ = verifyCmd.MarkFlagRequired("source")
}

func runVerify(cmd *cobra.Command, args []string) error {
	quote := args[0]
	cfg := engineConfig()

	store := corpus.NewStore(cfg.Corpus.Dir, cfg)
	verifier := verify.NewVerifier(store)
	result := verifier.VerifyQuote(quote, verifySource)

	if verifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch {
	case result.Error != "":
		fmt.Printf("✗ %s\n", result.Error)
		for _, f := range result.AvailableFiles {
			fmt.Printf("    available: %s\n", f)
		}
	case result.Verified:
		fmt.Printf("✓ verified (similarity %.2f) in %s\n", result.Similarity, result.SourceFile)
	default:
		fmt.Printf("✗ not verified (similarity %.2f) in %s\n", result.Similarity, result.SourceFile)
		if result.NearestMatch != "" {
			fmt.Printf("\nNearest passage:\n%s\n", result.NearestMatch)
		}
	}

	if cfg.Output.Verbose && result.ContextBefore != "" {
		fmt.Printf("\nContext before:\n%s\n", result.ContextBefore)
	}
	if cfg.Output.Verbose && result.ContextAfter != "" {
		fmt.Printf("\nContext after:\n%s\n", result.ContextAfter)
	}
	return nil
}
