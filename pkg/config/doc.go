// Package config provides configuration management for vocabcmp.
//
// Configuration is loaded from a YAML file with sensible defaults and
// environment variable overrides. All settings are optional: running
// without a config file uses the BERT defaults (uncased "##" continuation
// marker, [PAD]/[UNK]/[CLS]/[SEP]/[MASK] special set, [unusedN]
// placeholders, 10 difference examples per side).
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfigWithEnvOverrides("vocabcmp.yaml")
//
// or, without a file:
//
//	cfg := config.Default()
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention VOCABCMP_SECTION_FIELD
// and always take precedence over file values. For example:
//
//   - VOCABCMP_TOKENIZER_LOWERCASE overrides tokenizer.lowercase
//   - VOCABCMP_FILTER_SPECIAL_TOKENS (comma-separated) overrides filter.special_tokens
//   - VOCABCMP_COMPARE_MAX_EXAMPLES overrides compare.max_examples
//
// # Configuration Precedence
//
// Values are applied in the following order (later overrides earlier):
//
//  1. Default values (defaults.go)
//  2. Values from the YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
package config
