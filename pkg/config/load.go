package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow the
// naming convention VOCABCMP_SECTION_FIELD and always take precedence over
// file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Variables use the format VOCABCMP_SECTION_FIELD.
func ApplyEnvOverrides(cfg *Config) {
	// Tokenizer overrides
	if val := os.Getenv("VOCABCMP_TOKENIZER_LOWERCASE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Tokenizer.Lowercase = b
		}
	}
	if val := os.Getenv("VOCABCMP_TOKENIZER_CONTINUATION_MARKER"); val != "" {
		cfg.Tokenizer.ContinuationMarker = val
	}

	// Filter overrides
	if val := os.Getenv("VOCABCMP_FILTER_SPECIAL_TOKENS"); val != "" {
		var tokens []string
		for _, t := range strings.Split(val, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
		cfg.Filter.SpecialTokens = tokens
	}
	if val := os.Getenv("VOCABCMP_FILTER_PLACEHOLDER_PATTERN"); val != "" {
		cfg.Filter.PlaceholderPattern = val
	}

	// Compare overrides
	if val := os.Getenv("VOCABCMP_COMPARE_MAX_EXAMPLES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Compare.MaxExamples = i
		}
	}
	if val := os.Getenv("VOCABCMP_COMPARE_SEED"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Compare.Seed = i
		}
	}

	// Watch overrides
	if val := os.Getenv("VOCABCMP_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
}
