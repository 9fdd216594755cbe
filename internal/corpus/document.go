package corpus

import (
	"strings"

	"github.com/citelint/citelint/internal/normalize"
)

// Document is a parsed corpus file: the original lines plus the normalized
// content and the cumulative tables used to map normalized offsets and word
// indices back to original lines.
//
// The offset mapping is inherently approximate: normalization changes each
// line's length, so a line's span is its normalized length plus one for the
// separator, and the first line whose cumulative range covers an offset is
// the canonical answer.
type Document struct {
	Name       string
	Lines      []string
	Normalized string

	words      []string
	endOffsets []int // cumulative normalized byte length per line, exclusive
	endWords   []int // cumulative word count per line, exclusive
}

func parseDocument(name, content string) *Document {
	lines := strings.Split(content, "\n")
	normalized := normalize.Plain(content)

	endOffsets := make([]int, len(lines))
	endWords := make([]int, len(lines))

	cumOffset := 0
	cumWords := 0
	for i, line := range lines {
		normLine := normalize.Plain(line)
		cumOffset += len(normLine) + 1
		cumWords += len(strings.Fields(normLine))
		endOffsets[i] = cumOffset
		endWords[i] = cumWords
	}

	return &Document{
		Name:       name,
		Lines:      lines,
		Normalized: normalized,
		words:      strings.Fields(normalized),
		endOffsets: endOffsets,
		endWords:   endWords,
	}
}

// Words returns the normalized content as a word sequence.
func (d *Document) Words() []string {
	return d.words
}

// LineForOffset maps a byte offset in the normalized content to a 0-based
// original line index.
func (d *Document) LineForOffset(offset int) int {
	for i, end := range d.endOffsets {
		if offset < end {
			return i
		}
	}
	return len(d.Lines) - 1
}

// LineForWord maps a word index in the normalized content to a 0-based
// original line index.
func (d *Document) LineForWord(index int) int {
	for i, end := range d.endWords {
		if index < end {
			return i
		}
	}
	return len(d.Lines) - 1
}

// LinesBefore returns up to n original lines preceding the 0-based line,
// joined by newline. Empty when the line is at the top of the file.
func (d *Document) LinesBefore(line, n int) string {
	from := line - n
	if from < 0 {
		from = 0
	}
	if line <= 0 || from >= len(d.Lines) {
		return ""
	}
	return strings.Join(d.Lines[from:line], "\n")
}

// LinesAfter returns up to n original lines following the 0-based line.
func (d *Document) LinesAfter(line, n int) string {
	from := line + 1
	if from >= len(d.Lines) {
		return ""
	}
	to := from + n
	if to > len(d.Lines) {
		to = len(d.Lines)
	}
	return strings.Join(d.Lines[from:to], "\n")
}

// Window returns the original lines from line-radius through line+radius,
// clamped to the file, joined by newline.
func (d *Document) Window(line, radius int) string {
	from := line - radius
	if from < 0 {
		from = 0
	}
	to := line + radius + 1
	if to > len(d.Lines) {
		to = len(d.Lines)
	}
	if from >= to {
		return ""
	}
	return strings.Join(d.Lines[from:to], "\n")
}

// LineSpan returns the original lines from..to inclusive (0-based),
// clamped, joined by newline.
func (d *Document) LineSpan(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to >= len(d.Lines) {
		to = len(d.Lines) - 1
	}
	if from > to {
		return ""
	}
	return strings.Join(d.Lines[from:to+1], "\n")
}
