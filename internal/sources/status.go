package sources

import (
	"github.com/citelint/citelint/internal/model"
	"github.com/citelint/citelint/internal/resolve"
)

// Status reports whether one registered source has an extracted text file
// in the corpus.
type Status struct {
	Record    model.SourceRecord `json:"record"`
	Extracted bool               `json:"extracted"`
	File      string             `json:"file,omitempty"` // First matching corpus file
}

// CheckStatus cross-references registry records against the corpus file
// list, resolving each record's author-year key the same way quote
// verification does.
func CheckStatus(records []model.SourceRecord, corpusFiles []string) []Status {
	statuses := make([]Status, 0, len(records))
	for _, rec := range records {
		status := Status{Record: rec}
		if candidates := resolve.FindCandidates(corpusFiles, rec.AuthorYear); len(candidates) > 0 {
			status.Extracted = true
			status.File = candidates[0]
		}
		statuses = append(statuses, status)
	}
	return statuses
}
