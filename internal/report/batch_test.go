package report

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/citelint/citelint/internal/corpus"
	"github.com/citelint/citelint/internal/model"
	"github.com/citelint/citelint/internal/verify"
)

// testSetup builds a corpus with one Johnson 2007 source and a claims
// directory with four quotes: one exact, one paraphrased, and two citing a
// source that has no extracted text.
func testSetup(t *testing.T) (*Reporter, *model.Config) {
	t.Helper()
	root := t.TempDir()

	corpusDir := filepath.Join(root, "corpus")
	if err := os.MkdirAll(corpusDir, 0755); err != nil {
		t.Fatal(err)
	}
	source := "Introductory remarks about expression data.\nBatch effects are a major confound in RNA-seq studies.\nClosing remarks.\n"
	if err := os.WriteFile(filepath.Join(corpusDir, "Johnson - 2007 Batch Effects.txt"), []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	claimsDir := filepath.Join(root, "claims")
	if err := os.MkdirAll(claimsDir, 0755); err != nil {
		t.Fatal(err)
	}
	claims := `## C_01: Exact quote
**Source**: Johnson2007
**Primary Quote**
> major confound in RNA-seq

## C_02: Paraphrased quote
**Source**: Johnson2007
**Primary Quote**
> major confounds within RNAseq

## C_03: First missing source
**Source**: Missing2099
**Primary Quote**
> some quoted text nobody can check

## C_04: Second missing source
**Source**: Missing2099
**Primary Quote**
> more unverifiable quoted text
`
	if err := os.WriteFile(filepath.Join(claimsDir, "claims.md"), []byte(claims), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := model.DefaultConfig()
	cfg.Corpus.Dir = corpusDir
	cfg.Claims.Dir = claimsDir
	cfg.Claims.LegacyFile = filepath.Join(root, "claims_and_evidence.md")
	cfg.Cache.Enabled = false
	cfg.Concurrency.Workers = 2

	store := corpus.NewStore(corpusDir, cfg)
	return NewReporter(verify.NewVerifier(store), cfg), cfg
}

func TestVerifyAll(t *testing.T) {
	reporter, _ := testSetup(t)

	report, err := reporter.VerifyAll(context.Background())
	if err != nil {
		t.Fatalf("VerifyAll: %v", err)
	}

	if report.TotalQuotes != 4 {
		t.Errorf("TotalQuotes = %d, want 4", report.TotalQuotes)
	}
	if report.VerifiedQuotes != 1 {
		t.Errorf("VerifiedQuotes = %d, want 1", report.VerifiedQuotes)
	}
	if len(report.IncorrectQuotes) != 3 {
		t.Fatalf("expected 3 incorrect quotes, got %d: %+v", len(report.IncorrectQuotes), report.IncorrectQuotes)
	}

	// Aggregation invariant.
	if report.TotalQuotes != report.VerifiedQuotes+len(report.IncorrectQuotes) {
		t.Error("total != verified + incorrect")
	}

	// Extraction order preserved.
	wantOrder := []string{"C_02", "C_03", "C_04"}
	for i, q := range report.IncorrectQuotes {
		if q.ClaimID != wantOrder[i] {
			t.Errorf("IncorrectQuotes[%d].ClaimID = %q, want %q", i, q.ClaimID, wantOrder[i])
		}
	}

	// Missing sources deduplicated.
	if len(report.MissingSourceFiles) != 1 || report.MissingSourceFiles[0] != "Missing2099" {
		t.Errorf("MissingSourceFiles = %v, want [Missing2099]", report.MissingSourceFiles)
	}

	// The paraphrase carries its similarity and claim identity through.
	para := report.IncorrectQuotes[0]
	if para.Similarity <= 0 || para.Similarity >= verify.FuzzyThreshold {
		t.Errorf("paraphrase similarity = %v, want partial", para.Similarity)
	}
	if para.ClaimFile != "claims.md" || para.QuoteLine == 0 {
		t.Errorf("claim identity not carried through: %+v", para)
	}

	// Missing-source entries carry the diagnostic error.
	if !strings.Contains(report.IncorrectQuotes[1].Error, "no source file found") {
		t.Errorf("expected missing-source error, got %q", report.IncorrectQuotes[1].Error)
	}
}

func TestVerifyAll_Deterministic(t *testing.T) {
	reporter, _ := testSetup(t)

	first, err := reporter.VerifyAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := reporter.VerifyAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.TotalQuotes != second.TotalQuotes || first.VerifiedQuotes != second.VerifiedQuotes {
		t.Error("expected identical aggregate counts across runs")
	}
	if !reflect.DeepEqual(first.IncorrectQuotes, second.IncorrectQuotes) {
		t.Error("expected identical incorrect-quote lists across runs")
	}
	if !reflect.DeepEqual(first.MissingSourceFiles, second.MissingSourceFiles) {
		t.Error("expected identical missing-source lists across runs")
	}
}

func TestVerifyAll_NoClaims(t *testing.T) {
	root := t.TempDir()
	cfg := model.DefaultConfig()
	cfg.Corpus.Dir = filepath.Join(root, "corpus")
	cfg.Claims.Dir = filepath.Join(root, "claims")
	cfg.Claims.LegacyFile = filepath.Join(root, "claims_and_evidence.md")

	store := corpus.NewStore(cfg.Corpus.Dir, cfg)
	reporter := NewReporter(verify.NewVerifier(store), cfg)

	if _, err := reporter.VerifyAll(context.Background()); err == nil {
		t.Error("expected error when no claim records exist")
	}
}

func TestWriteJSONAndMarkdown(t *testing.T) {
	reporter, _ := testSetup(t)
	report, err := reporter.VerifyAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := WriteJSON(report, jsonPath); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"total_quotes": 4`) {
		t.Errorf("JSON report missing totals: %s", data)
	}

	if err := WriteMarkdown(report, mdPath); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Quote Verification Report", "Missing2099", "C_02"} {
		if !strings.Contains(string(md), want) {
			t.Errorf("markdown report missing %q", want)
		}
	}
}
