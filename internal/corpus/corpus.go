// Package corpus provides read access to a directory of extracted source
// texts. Every operation re-reads from disk unless the document cache is
// enabled; there is no other shared state between calls.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/citelint/citelint/internal/model"
)

// Store reads corpus files from a single directory. Only files ending in
// the configured text extension are candidates.
type Store struct {
	dir   string
	ext   string
	cache *documentCache
}

// NewStore creates a corpus store for the given directory.
func NewStore(dir string, cfg *model.Config) *Store {
	ext := cfg.Corpus.TextExtension
	if ext == "" {
		ext = ".txt"
	}

	var cache *documentCache
	if cfg.Cache.Enabled {
		cache = newDocumentCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Store{dir: dir, ext: ext, cache: cache}
}

// Dir returns the corpus directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether the corpus directory is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// ListFiles enumerates candidate filenames sorted by name. Directory order
// is filesystem-dependent, so sorting keeps resolution deterministic across
// platforms.
func (s *Store) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), s.ext) {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load reads and parses one corpus file, consulting the cache first. Cache
// entries are keyed by (name, mtime) so an edited file is never served
// stale.
func (s *Store) Load(name string) (*Document, error) {
	path := filepath.Join(s.dir, name)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}

	var key string
	if s.cache != nil {
		key = cacheKey(name, info.ModTime())
		if doc, found := s.cache.get(key); found {
			return doc, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	doc := parseDocument(name, string(data))
	if s.cache != nil {
		s.cache.set(key, doc)
	}
	return doc, nil
}
