package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/citelint/citelint/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestStore_ListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Zhang - 2020 ComBat-seq.txt", "content")
	writeFile(t, dir, "Johnson - 2007 Batch Effects.txt", "content")
	writeFile(t, dir, "notes.md", "not a corpus file")

	store := NewStore(dir, model.DefaultConfig())
	files, err := store.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}

	want := []string{"Johnson - 2007 Batch Effects.txt", "Zhang - 2020 ComBat-seq.txt"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestStore_Exists(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"), model.DefaultConfig())
	if store.Exists() {
		t.Error("expected Exists to be false for a missing directory")
	}
}

func TestStore_Load_Cached(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "one line\ntwo line")

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = true
	store := NewStore(dir, cfg)

	first, err := store.Load("a.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := store.Load("a.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Error("expected the cached document on the second load")
	}
}

func TestStore_Load_Missing(t *testing.T) {
	store := NewStore(t.TempDir(), model.DefaultConfig())
	if _, err := store.Load("nope.txt"); err == nil {
		t.Error("expected error loading a missing file")
	}
}

func TestDocument_OffsetMapping(t *testing.T) {
	doc := parseDocument("test.txt", "First line here.\nSecond line follows.\nThird line ends.")

	offset := strings.Index(doc.Normalized, "second")
	if offset < 0 {
		t.Fatal("expected to find 'second' in normalized content")
	}
	if line := doc.LineForOffset(offset); line != 1 {
		t.Errorf("LineForOffset(%d) = %d, want 1", offset, line)
	}
	if line := doc.LineForOffset(0); line != 0 {
		t.Errorf("LineForOffset(0) = %d, want 0", line)
	}
	// Offsets past the end clamp to the last line.
	if line := doc.LineForOffset(10_000); line != 2 {
		t.Errorf("LineForOffset(10000) = %d, want 2", line)
	}
}

func TestDocument_WordMapping(t *testing.T) {
	doc := parseDocument("test.txt", "one two three\nfour five\nsix")

	tests := []struct {
		index, wantLine int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {99, 2},
	}
	for _, tt := range tests {
		if line := doc.LineForWord(tt.index); line != tt.wantLine {
			t.Errorf("LineForWord(%d) = %d, want %d", tt.index, line, tt.wantLine)
		}
	}

	if got := len(doc.Words()); got != 6 {
		t.Errorf("expected 6 words, got %d", got)
	}
}

func TestDocument_ContextWindows(t *testing.T) {
	doc := parseDocument("test.txt", "l0\nl1\nl2\nl3\nl4")

	if got := doc.LinesBefore(2, 2); got != "l0\nl1" {
		t.Errorf("LinesBefore(2, 2) = %q", got)
	}
	if got := doc.LinesBefore(0, 2); got != "" {
		t.Errorf("LinesBefore(0, 2) = %q, want empty", got)
	}
	if got := doc.LinesAfter(2, 2); got != "l3\nl4" {
		t.Errorf("LinesAfter(2, 2) = %q", got)
	}
	if got := doc.LinesAfter(4, 2); got != "" {
		t.Errorf("LinesAfter(4, 2) = %q, want empty", got)
	}
	if got := doc.Window(0, 2); got != "l0\nl1\nl2" {
		t.Errorf("Window(0, 2) = %q", got)
	}
	if got := doc.Window(4, 2); got != "l2\nl3\nl4" {
		t.Errorf("Window(4, 2) = %q", got)
	}
	if got := doc.LineSpan(1, 3); got != "l1\nl2\nl3" {
		t.Errorf("LineSpan(1, 3) = %q", got)
	}
	if got := doc.LineSpan(3, 99); got != "l3\nl4" {
		t.Errorf("LineSpan(3, 99) = %q", got)
	}
}
