package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/report"
	"github.com/citelint/citelint/internal/verify"
	"github.com/spf13/cobra"
)

var (
	batchClaimsDir   string
	batchClaimsFile  string
	batchJSON        string
	batchMD          string
	batchConcurrency int
	batchRate        float64
	batchNoCache     bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify every quote in the claim corpus",
	Long: `Batch extracts all quotes from the claim records (a directory of
per-claim markdown files, or the legacy single file when the directory
does not exist) and verifies each against the source corpus.

Quotes below the 85% similarity threshold are flagged; author-year keys
with no matching source file are collected separately. A single quote's
failure never aborts the batch.

Example:
  citelint batch --corpus literature/ExtractedText --claims-dir claims
  citelint batch --json report.json --md report.md
  citelint batch --concurrency 8 --rate 50`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchClaimsDir, "claims-dir", "", "directory of per-claim markdown files")
	batchCmd.Flags().StringVar(&batchClaimsFile, "claims-file", "", "legacy single claims file")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "output JSON path (default: stdout)")
	batchCmd.Flags().StringVar(&batchMD, "md", "", "output Markdown path (optional)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "number of concurrent verification workers")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 0, "max corpus reads per second (0 = unlimited)")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable the corpus document cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := engineConfig()
	if batchClaimsDir != "" {
		cfg.Claims.Dir = batchClaimsDir
	}
	if batchClaimsFile != "" {
		cfg.Claims.LegacyFile = batchClaimsFile
	}
	if batchConcurrency > 0 {
		cfg.Concurrency.Workers = batchConcurrency
	}
	if batchRate > 0 {
		cfg.RateLimiting.ReadsPerSecond = batchRate
	}
	if batchNoCache {
		cfg.Cache.Enabled = false
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Corpus:  %s\n", cfg.Corpus.Dir)
		fmt.Fprintf(os.Stderr, "Claims:  %s (fallback %s)\n", cfg.Claims.Dir, cfg.Claims.LegacyFile)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintln(os.Stderr)
	}

	store := corpus.NewStore(cfg.Corpus.Dir, cfg)
	verifier := verify.NewVerifier(store)
	reporter := report.NewReporter(verifier, cfg)

	batchReport, err := reporter.VerifyAll(context.Background())
	if err != nil {
		return fmt.Errorf("batch verification: %w", err)
	}

	report.WriteSummary(os.Stderr, batchReport)

	if batchMD != "" {
		if err := report.WriteMarkdown(batchReport, batchMD); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", batchMD)
	}

	return report.WriteJSON(batchReport, batchJSON)
}
