package config

import "time"

// Config is the root configuration structure for vocabcmp.
type Config struct {
	// Tokenizer configures the basic tokenizer used for consistency
	// checking and reference-corpus counting.
	Tokenizer TokenizerConfig `yaml:"tokenizer"`

	// Filter configures the special-token and placeholder partitioning.
	Filter FilterConfig `yaml:"filter"`

	// Compare configures the pairwise comparison.
	Compare CompareConfig `yaml:"compare"`

	// Watch configures watch mode.
	Watch WatchConfig `yaml:"watch"`
}

// TokenizerConfig contains basic tokenizer settings.
type TokenizerConfig struct {
	// Lowercase folds tokens to lower case, matching uncased models.
	// Default: true
	Lowercase bool `yaml:"lowercase"`

	// ContinuationMarker is the prefix denoting a word-continuation
	// subword piece.
	// Default: "##"
	ContinuationMarker string `yaml:"continuation_marker"`
}

// FilterConfig contains vocabulary partitioning settings.
type FilterConfig struct {
	// SpecialTokens is the closed set of reserved control tokens.
	// Default: [PAD], [UNK], [CLS], [SEP], [MASK]
	SpecialTokens []string `yaml:"special_tokens"`

	// PlaceholderPattern is the regular expression matching reserved-but-
	// unassigned vocabulary slots.
	// Default: ^\[unused[0-9]+\]$
	PlaceholderPattern string `yaml:"placeholder_pattern"`
}

// CompareConfig contains pairwise comparison settings.
type CompareConfig struct {
	// MaxExamples caps the difference examples reported per side.
	// Default: 10
	MaxExamples int `yaml:"max_examples"`

	// Seed seeds the random sampler used in unranked mode. Zero means a
	// time-based seed.
	// Default: 0
	Seed int64 `yaml:"seed"`
}

// WatchConfig contains watch mode settings.
type WatchConfig struct {
	// DebounceInterval is the quiet period after a file change before the
	// comparison re-runs.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}
