// Package report drives batch verification over an entire claim corpus
// and renders the aggregated result.
package report

import (
	"context"
	"strings"

	"github.com/citelint/citelint/internal/extract"
	"github.com/citelint/citelint/internal/model"
	"github.com/citelint/citelint/internal/verify"
	"github.com/citelint/citelint/internal/worker"
)

// Reporter extracts every quote from the claim corpus and verifies each
// against the source corpus.
type Reporter struct {
	extractor *extract.QuoteExtractor
	verifier  *verify.Verifier
	cfg       *model.Config
}

// NewReporter creates a batch reporter.
func NewReporter(verifier *verify.Verifier, cfg *model.Config) *Reporter {
	return &Reporter{
		extractor: extract.NewQuoteExtractor(),
		verifier:  verifier,
		cfg:       cfg,
	}
}

// VerifyAll extracts all claim quotes and verifies them. Verification runs
// on the worker pool, but IncorrectQuotes keeps extraction order and
// MissingSourceFiles keeps first-seen order, so the report is deterministic.
// A single quote's failure never aborts the batch.
func (r *Reporter) VerifyAll(ctx context.Context) (*model.BatchReport, error) {
	quotes, err := r.extractor.ExtractAll(r.cfg.Claims.Dir, r.cfg.Claims.LegacyFile)
	if err != nil {
		return nil, err
	}

	results := r.verifyConcurrent(ctx, quotes)

	report := &model.BatchReport{
		TotalQuotes:        len(quotes),
		IncorrectQuotes:    []model.QuoteVerificationResult{},
		MissingSourceFiles: []string{},
	}

	seenMissing := make(map[string]bool)
	for i, quote := range quotes {
		result := results[i]

		if result.Error != "" && strings.Contains(result.Error, "no source file found") && !seenMissing[quote.AuthorYear] {
			seenMissing[quote.AuthorYear] = true
			report.MissingSourceFiles = append(report.MissingSourceFiles, quote.AuthorYear)
		}

		if !result.Verified || result.Similarity < verify.FuzzyThreshold {
			report.IncorrectQuotes = append(report.IncorrectQuotes, model.QuoteVerificationResult{
				ClaimID:            quote.ClaimID,
				ClaimTitle:         quote.ClaimTitle,
				AuthorYear:         quote.AuthorYear,
				Quote:              quote.Quote,
				QuoteType:          quote.QuoteType,
				QuoteLine:          quote.LineNumber,
				ClaimFile:          quote.SourceFile,
				VerificationResult: result,
			})
		}
	}

	report.VerifiedQuotes = report.TotalQuotes - len(report.IncorrectQuotes)
	return report, nil
}

// verifyConcurrent fans quote verifications out to the pool and reassembles
// results by submission index.
func (r *Reporter) verifyConcurrent(ctx context.Context, quotes []model.ClaimQuote) []model.VerificationResult {
	results := make([]model.VerificationResult, len(quotes))
	if len(quotes) == 0 {
		return results
	}

	pool := worker.NewPool(ctx, r.cfg.Concurrency.Workers)
	limiter := worker.NewLimiter(r.cfg.RateLimiting.ReadsPerSecond, r.cfg.RateLimiting.BurstSize)
	pool.Start()

	for i, quote := range quotes {
		pool.Submit(&verifyJob{
			index:    i,
			quote:    quote,
			verifier: r.verifier,
			limiter:  limiter,
		})
	}

	for _, res := range pool.Wait() {
		vr := res.(*verifyResult)
		results[vr.index] = vr.result
	}
	return results
}

// verifyJob verifies one claim quote on the pool.
type verifyJob struct {
	index    int
	quote    model.ClaimQuote
	verifier *verify.Verifier
	limiter  *worker.Limiter
}

func (j *verifyJob) Execute(ctx context.Context) worker.Result {
	if err := j.limiter.Wait(ctx); err != nil {
		return &verifyResult{
			index:  j.index,
			err:    err,
			result: model.VerificationResult{Error: err.Error()},
		}
	}
	return &verifyResult{
		index:  j.index,
		result: j.verifier.VerifyQuote(j.quote.Quote, j.quote.AuthorYear),
	}
}

// verifyResult carries the submission index so the reporter can restore
// extraction order.
type verifyResult struct {
	index  int
	result model.VerificationResult
	err    error
}

func (r *verifyResult) GetError() error { return r.err }
