package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vocabtools/vocabcmp/pkg/config"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "vocabcmp",
	Short: "Compare WordPiece-style subword vocabularies",
	Long: `Vocabcmp compares two or more subword vocabularies as used by
WordPiece-style tokenizers.

It reports, for every pair of vocabularies:
  - the overlap size and both asymmetric coverage ratios
  - example tokens from each one-sided difference, sampled randomly or
    ranked by frequency in a reference corpus

Special tokens ([PAD], [UNK], ...) and [unusedN] placeholders are filtered
out before comparison, and entries spanning multiple basic tokens are
flagged as likely vocabulary/tokenizer mismatches.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional)")
}

// loadConfig resolves the effective configuration: file (when given),
// then environment overrides, then validation.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigWithEnvOverrides(cfgFile)
	}

	cfg := config.Default()
	config.ApplyEnvOverrides(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
