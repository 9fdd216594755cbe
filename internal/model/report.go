package model

// QuoteVerificationResult carries a verification outcome together with the
// identity of the claim quote it belongs to.
type QuoteVerificationResult struct {
	ClaimID    string    `json:"claim_id"`
	ClaimTitle string    `json:"claim_title,omitempty"`
	AuthorYear string    `json:"author_year"`
	Quote      string    `json:"quote"`
	QuoteType  QuoteType `json:"quote_type"`
	QuoteLine  int       `json:"quote_line"` // 1-indexed line in the claim record
	ClaimFile  string    `json:"claim_file"` // Claim record the quote came from

	VerificationResult
}

// BatchReport aggregates verification of an entire claim corpus.
// Invariant: TotalQuotes == VerifiedQuotes + len(IncorrectQuotes).
type BatchReport struct {
	TotalQuotes        int                       `json:"total_quotes"`
	VerifiedQuotes     int                       `json:"verified_quotes"`
	IncorrectQuotes    []QuoteVerificationResult `json:"incorrect_quotes"`
	MissingSourceFiles []string                  `json:"missing_source_files"` // Deduplicated author-year keys, first-seen order
}

// SourceRecord is one row of the Source ID Registry table
type SourceRecord struct {
	SourceID   int    `json:"source_id"`
	AuthorYear string `json:"author_year"`
	Authors    string `json:"authors"`
	Year       string `json:"year"`
	Title      string `json:"title"`
}
