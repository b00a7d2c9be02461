package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vocabtools/vocabcmp/pkg/cli"
	"vocabtools/vocabcmp/pkg/diag"
	"vocabtools/vocabcmp/pkg/tokenize"
	"vocabtools/vocabcmp/pkg/vocab"
)

var checkFlags struct {
	strict bool
}

var checkCmd = &cobra.Command{
	Use:   "check VOCAB [VOCAB...]",
	Short: "Sanity-check vocabulary files",
	Long: `Sanity-check one or more vocabulary files without comparing them.

For each file, check reports the special/placeholder/ordinary token counts
and flags ordinary entries that decompose into more than one basic token.
Such entries cannot be produced by a tokenizer built on the same basic
segmentation and usually indicate a vocabulary/tokenizer mismatch.

Examples:
  # Check a single vocabulary
  vocabcmp check bert-base.txt

  # Fail the build when multi-piece entries exist
  vocabcmp check --strict bert-base.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return cli.NewUsageError("require at least 1 vocab to check")
		}
		return nil
	},
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false, "exit non-zero if any multi-piece entries are found")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reporter := diag.NewWriterReporter(cmd.ErrOrStderr())
	tok := tokenize.Tokenizer{Lowercase: cfg.Tokenizer.Lowercase}

	filter, err := vocab.NewFilter(cfg.Filter.SpecialTokens, cfg.Filter.PlaceholderPattern)
	if err != nil {
		return err
	}
	checker := vocab.Checker{
		Tokenizer:          tok,
		ContinuationMarker: cfg.Tokenizer.ContinuationMarker,
	}

	total := 0
	for _, path := range args {
		v, err := vocab.Load(path, reporter)
		if err != nil {
			return err
		}
		filtered := filter.Apply(v, reporter)
		multipiece := checker.Check(filtered, reporter)
		total += len(multipiece)

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ordinary tokens, %d multi-piece\n",
			path, filtered.Len(), len(multipiece))
	}

	if checkFlags.strict && total > 0 {
		return cli.NewCommandError("check", fmt.Errorf("%d multi-piece entries found", total))
	}
	return nil
}
