package model

import "time"

// Config holds the complete citelint configuration
type Config struct {
	Corpus       CorpusConfig       `yaml:"corpus" json:"corpus"`
	Claims       ClaimsConfig       `yaml:"claims" json:"claims"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" json:"output"`
}

// CorpusConfig describes where extracted source texts live
type CorpusConfig struct {
	Dir           string `yaml:"dir" json:"dir"`                       // Directory of extracted plain-text files
	TextExtension string `yaml:"text_extension" json:"text_extension"` // Only files with this extension are candidates
	SourcesTable  string `yaml:"sources_table" json:"sources_table"`   // Markdown file holding the Source ID Registry
}

// ClaimsConfig describes where claim records live
type ClaimsConfig struct {
	Dir        string `yaml:"dir" json:"dir"`                 // Per-claim markdown directory (takes precedence)
	LegacyFile string `yaml:"legacy_file" json:"legacy_file"` // Single-file fallback when Dir does not exist
}

// CacheConfig controls the in-memory corpus document cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled"`
	TTL             time.Duration `yaml:"ttl" json:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval"`
}

// ConcurrencyConfig controls parallelism for batch verification
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitingConfig throttles corpus reads, useful for network-mounted
// corpora. Zero means unlimited.
type RateLimitingConfig struct {
	ReadsPerSecond float64 `yaml:"reads_per_second" json:"reads_per_second"`
	BurstSize      int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig controls report output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir:           "literature/ExtractedText",
			TextExtension: ".txt",
			SourcesTable:  "claims_matrix.md",
		},
		Claims: ClaimsConfig{
			Dir:        "claims",
			LegacyFile: "claims_and_evidence.md",
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			ReadsPerSecond: 0,
			BurstSize:      5,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
