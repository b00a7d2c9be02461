package config

import (
	"time"

	"vocabtools/vocabcmp/pkg/vocab"
)

// Default values for configuration fields.
const (
	// Tokenizer defaults. Lowercasing is off: vocabularies are compared
	// as written, cased and uncased alike.
	DefaultLowercase          = false
	DefaultContinuationMarker = vocab.DefaultContinuationMarker

	// Filter defaults
	DefaultPlaceholderPattern = vocab.DefaultPlaceholderPattern

	// Compare defaults
	DefaultMaxExamples = 10
	DefaultSeed        = int64(0)

	// Watch defaults
	DefaultDebounceInterval = 100 * time.Millisecond
)

// Default returns a configuration populated with all default values.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Tokenizer.ContinuationMarker == "" {
		cfg.Tokenizer.ContinuationMarker = DefaultContinuationMarker
	}
	if cfg.Filter.SpecialTokens == nil {
		cfg.Filter.SpecialTokens = append([]string(nil), vocab.DefaultSpecialTokens...)
	}
	if cfg.Filter.PlaceholderPattern == "" {
		cfg.Filter.PlaceholderPattern = DefaultPlaceholderPattern
	}
	if cfg.Compare.MaxExamples == 0 {
		cfg.Compare.MaxExamples = DefaultMaxExamples
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
}
