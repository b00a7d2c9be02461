package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"vocabtools/vocabcmp/pkg/cli"
	"vocabtools/vocabcmp/pkg/compare"
	"vocabtools/vocabcmp/pkg/config"
	"vocabtools/vocabcmp/pkg/corpus"
	"vocabtools/vocabcmp/pkg/diag"
	"vocabtools/vocabcmp/pkg/tokenize"
	"vocabtools/vocabcmp/pkg/vocab"
	"vocabtools/vocabcmp/pkg/watch"
)

var compareFlags struct {
	referenceText string
	maxExamples   int
	seed          int64
	format        string
	stats         bool
	watchMode     bool
}

var compareCmd = &cobra.Command{
	Use:   "compare VOCAB VOCAB [VOCAB...]",
	Short: "Compare two or more vocabulary files pairwise",
	Long: `Compare two or more vocabulary files pairwise.

Each vocabulary file holds one token per line. After filtering special and
placeholder tokens, every unordered pair of vocabularies is compared: the
overlap summary goes to stdout, followed by example tokens from each
one-sided difference.

Without a reference text the examples are sampled uniformly at random.
With --reference-text the examples are the highest-ranked corpus tokens
exclusive to one side, annotated with their frequency rank; tokens that
never occur in the corpus are not reported.

Examples:
  # Random difference samples
  vocabcmp compare bert-base.txt bert-large.txt

  # Frequency-ranked differences
  vocabcmp compare -t corpus.txt bert-base.txt biobert.txt

  # Deterministic sampling for scripted use
  vocabcmp compare --seed 42 bert-base.txt bert-large.txt

  # JSON output for CI/CD
  vocabcmp compare --format json bert-base.txt bert-large.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return cli.NewUsageError("require at least 2 vocabs to compare")
		}
		return nil
	},
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareFlags.referenceText, "reference-text", "t", "", "reference text to rank differences by")
	compareCmd.Flags().IntVar(&compareFlags.maxExamples, "max-examples", 0, "difference examples per side (overrides config)")
	compareCmd.Flags().Int64Var(&compareFlags.seed, "seed", 0, "random seed for difference sampling (0 = time-based)")
	compareCmd.Flags().StringVar(&compareFlags.format, "format", "text", "output format: text, json")
	compareCmd.Flags().BoolVar(&compareFlags.stats, "stats", false, "dump run statistics to stderr")
	compareCmd.Flags().BoolVar(&compareFlags.watchMode, "watch", false, "re-run when any input file changes")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if compareFlags.maxExamples > 0 {
		cfg.Compare.MaxExamples = compareFlags.maxExamples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Compare.Seed = compareFlags.seed
	}

	format, err := cli.ParseFormat(compareFlags.format)
	if err != nil {
		return err
	}

	metrics := diag.NewMetrics(nil)
	reporter := diag.CountWarnings(diag.NewWriterReporter(cmd.ErrOrStderr()), metrics)

	run := func() error {
		return runPipeline(cmd, cfg, format, args, reporter, metrics)
	}

	if err := run(); err != nil {
		return err
	}

	if compareFlags.stats {
		if err := metrics.Dump(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if compareFlags.watchMode {
		files := append([]string(nil), args...)
		if compareFlags.referenceText != "" {
			files = append(files, compareFlags.referenceText)
		}

		w, err := watch.New(files, cfg.Watch.DebounceInterval, reporter)
		if err != nil {
			return err
		}
		return w.Watch(cli.SetupSignalHandler(), run)
	}

	return nil
}

// runPipeline performs one complete comparison pass: load all vocabularies,
// optionally build the reference frequency table, filter, consistency-check,
// compare pairwise, and write the report.
func runPipeline(cmd *cobra.Command, cfg *config.Config, format cli.OutputFormat,
	paths []string, reporter diag.Reporter, metrics *diag.Metrics) error {

	tok := tokenize.Tokenizer{Lowercase: cfg.Tokenizer.Lowercase}

	vocabs := make([]*vocab.Vocabulary, 0, len(paths))
	for _, path := range paths {
		v, err := vocab.Load(path, reporter)
		if err != nil {
			return err
		}
		metrics.AddTokensLoaded(path, v.Len())
		vocabs = append(vocabs, v)
	}

	var table *corpus.Table
	if compareFlags.referenceText != "" {
		var err error
		table, err = corpus.FromFile(compareFlags.referenceText, tok)
		if err != nil {
			return err
		}
	}

	filter, err := vocab.NewFilter(cfg.Filter.SpecialTokens, cfg.Filter.PlaceholderPattern)
	if err != nil {
		return err
	}
	for i, v := range vocabs {
		vocabs[i] = filter.Apply(v, reporter)
	}

	checker := vocab.Checker{
		Tokenizer:          tok,
		ContinuationMarker: cfg.Tokenizer.ContinuationMarker,
	}
	for _, v := range vocabs {
		checker.Check(v, reporter)
	}

	comparator := &compare.Comparator{
		MaxExamples: cfg.Compare.MaxExamples,
		Rand:        newRand(cfg.Compare.Seed),
		Table:       table,
	}
	report := comparator.Run(vocabs, reporter)
	for range report.Results {
		metrics.IncComparison()
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), report)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
