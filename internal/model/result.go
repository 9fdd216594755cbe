package model

// SearchMatch is a single line hit inside a corpus file
type SearchMatch struct {
	LineNumber int    `json:"line_number"` // 1-indexed line in the original file
	Text       string `json:"text"`        // Trimmed matching line
	Context    string `json:"context"`     // Up to ±2 original lines joined by newline
}

// SearchResult groups all matches found in one corpus file
type SearchResult struct {
	File    string        `json:"file"`   // Corpus filename
	Author  string        `json:"author"` // Parsed from "<author> - <year>..." (whole name on parse failure)
	Year    string        `json:"year"`   // Parsed 4-digit year, empty if the filename doesn't follow convention
	Matches []SearchMatch `json:"matches"`
}

// VerificationResult is the outcome of checking one quote against one source.
// "Not verified" is a normal result value, never an error; only missing
// directories, missing sources, and read failures populate Error.
type VerificationResult struct {
	Verified          bool     `json:"verified"`
	Similarity        float64  `json:"similarity"` // 1.0 exact, word-overlap fraction on the fuzzy path
	SourceFile        string   `json:"source_file,omitempty"`
	MatchedText       string   `json:"matched_text,omitempty"`   // Quote itself on exact match, best window text on fuzzy
	ContextBefore     string   `json:"context_before,omitempty"` // Up to 2 original lines before the match
	ContextAfter      string   `json:"context_after,omitempty"`  // Up to 2 original lines after the match
	NearestMatch      string   `json:"nearest_match,omitempty"`  // Original-line span covering the best fuzzy window
	Error             string   `json:"error,omitempty"`
	SearchedDirectory string   `json:"searched_directory,omitempty"`
	AvailableFiles    []string `json:"available_files,omitempty"` // Diagnostic sample when no candidate matched, capped at 10
}
