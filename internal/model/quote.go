package model

// QuoteType distinguishes the role a quote plays within a claim record
type QuoteType string

const (
	QuotePrimary    QuoteType = "Primary"    // The main quote backing the claim
	QuoteSupporting QuoteType = "Supporting" // Additional corroborating quotes
)

// ClaimQuote is one quotation extracted from a claim record
type ClaimQuote struct {
	ClaimID    string    `json:"claim_id"`    // Claim identifier (e.g., "C_07", "C_07a")
	ClaimTitle string    `json:"claim_title"` // Title from the claim header
	AuthorYear string    `json:"author_year"` // Source key (e.g., "Johnson2007")
	Quote      string    `json:"quote"`       // Quote text, blockquote markers and outer quotes stripped
	QuoteType  QuoteType `json:"quote_type"`  // Primary or Supporting
	LineNumber int       `json:"line_number"` // 1-indexed first line of the blockquote
	SourceFile string    `json:"source_file"` // Claim record file the quote came from
}
