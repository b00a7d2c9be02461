package compare

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"vocabtools/vocabcmp/pkg/corpus"
	"vocabtools/vocabcmp/pkg/diag"
	"vocabtools/vocabcmp/pkg/vocab"
)

// DefaultMaxExamples is the number of difference examples reported per side.
const DefaultMaxExamples = 10

// ErrEmptyVocabulary is returned when a vocabulary has no ordinary tokens
// left after filtering: coverage ratios are undefined for an empty set.
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// Overlap describes the set relationship between two vocabularies.
// Sizes are distinct-token counts; both ratios lie in [0,1].
type Overlap struct {
	Name1        string  `json:"vocab1"`
	Name2        string  `json:"vocab2"`
	Size1        int     `json:"size1"`
	Size2        int     `json:"size2"`
	Intersection int     `json:"overlap"`
	Coverage1    float64 `json:"coverage1"`
	Coverage2    float64 `json:"coverage2"`
}

// RankedExample is a difference token annotated with its 1-based corpus rank.
type RankedExample struct {
	Token string `json:"token"`
	Rank  int    `json:"rank"`
}

// Result is the outcome of one pairwise comparison. Exactly one of the
// sample or ranked fields is populated, depending on the comparison mode.
type Result struct {
	Overlap

	// Sample1 and Sample2 hold randomly sampled tokens from V1\V2 and
	// V2\V1 (unranked mode).
	Sample1 []string `json:"sample1,omitempty"`
	Sample2 []string `json:"sample2,omitempty"`

	// Ranked1 and Ranked2 hold rank-annotated exclusive tokens (ranked mode).
	Ranked1 []RankedExample `json:"ranked1,omitempty"`
	Ranked2 []RankedExample `json:"ranked2,omitempty"`
}

// Report is the full output of a comparison run.
type Report struct {
	// RunID uniquely identifies this run in diagnostics and JSON output.
	RunID string `json:"run_id"`

	// Ranked records whether a reference corpus supplied the examples.
	Ranked bool `json:"ranked"`

	Results []Result `json:"results"`
}

// Comparator runs pairwise vocabulary comparisons.
type Comparator struct {
	// MaxExamples caps the difference examples per side.
	// Defaults to DefaultMaxExamples when zero.
	MaxExamples int

	// Rand is the sampling source for unranked mode. When nil, a
	// time-seeded source is used.
	Rand *rand.Rand

	// Table enables ranked mode when non-nil.
	Table *corpus.Table
}

// NewOverlap computes the overlap statistics for two vocabularies.
// Returns ErrEmptyVocabulary if either side has no tokens.
func NewOverlap(v1, v2 *vocab.Vocabulary) (Overlap, error) {
	set1, set2 := v1.Set(), v2.Set()
	if len(set1) == 0 || len(set2) == 0 {
		return Overlap{}, fmt.Errorf("%s / %s: %w", v1.Name, v2.Name, ErrEmptyVocabulary)
	}

	var inter int
	for t := range set1 {
		if _, ok := set2[t]; ok {
			inter++
		}
	}

	return Overlap{
		Name1:        v1.Name,
		Name2:        v2.Name,
		Size1:        len(set1),
		Size2:        len(set2),
		Intersection: inter,
		Coverage1:    float64(inter) / float64(len(set1)),
		Coverage2:    float64(inter) / float64(len(set2)),
	}, nil
}

// Compare compares two filtered vocabularies. Neither input is modified.
func (c *Comparator) Compare(v1, v2 *vocab.Vocabulary) (Result, error) {
	ov, err := NewOverlap(v1, v2)
	if err != nil {
		return Result{}, err
	}

	res := Result{Overlap: ov}
	set1, set2 := v1.Set(), v2.Set()

	if c.Table == nil {
		rng := c.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		res.Sample1 = maxSample(rng, difference(v1, set2), c.maxExamples())
		res.Sample2 = maxSample(rng, difference(v2, set1), c.maxExamples())
	} else {
		res.Ranked1, res.Ranked2 = rankedDiff(c.Table, set1, set2, c.maxExamples())
	}

	return res, nil
}

// Run compares every unordered pair of vocabs in input-list order.
// Pairs where either side is empty are skipped with a warning.
func (c *Comparator) Run(vocabs []*vocab.Vocabulary, reporter diag.Reporter) *Report {
	report := &Report{
		RunID:  uuid.New().String(),
		Ranked: c.Table != nil,
	}

	for i := 0; i < len(vocabs); i++ {
		for j := i + 1; j < len(vocabs); j++ {
			res, err := c.Compare(vocabs[i], vocabs[j])
			if err != nil {
				reporter.Warnf("skipping pair: %v", err)
				continue
			}
			report.Results = append(report.Results, res)
		}
	}

	return report
}

func (c *Comparator) maxExamples() int {
	if c.MaxExamples <= 0 {
		return DefaultMaxExamples
	}
	return c.MaxExamples
}

// difference returns the tokens of v not present in other, deduplicated,
// in source order. Deterministic population order keeps seeded sampling
// reproducible.
func difference(v *vocab.Vocabulary, other map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(v.Tokens))
	var out []string
	for _, t := range v.Tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := other[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// maxSample draws min(len(population), k) elements without replacement,
// in random order. Never fails on a small population.
func maxSample(rng *rand.Rand, population []string, k int) []string {
	if k > len(population) {
		k = len(population)
	}

	out := make([]string, 0, k)
	for _, i := range rng.Perm(len(population))[:k] {
		out = append(out, population[i])
	}
	return out
}

// rankedDiff walks the frequency table once in rank order and collects up
// to max exclusive tokens per side, stopping early once both sides are full.
func rankedDiff(table *corpus.Table, set1, set2 map[string]struct{}, max int) (ex1, ex2 []RankedExample) {
	for i, e := range table.Ranked() {
		rank := i + 1
		_, in1 := set1[e.Token]
		_, in2 := set2[e.Token]

		if in1 && !in2 && len(ex1) < max {
			ex1 = append(ex1, RankedExample{Token: e.Token, Rank: rank})
		}
		if in2 && !in1 && len(ex2) < max {
			ex2 = append(ex2, RankedExample{Token: e.Token, Rank: rank})
		}
		if len(ex1) >= max && len(ex2) >= max {
			break
		}
	}
	return ex1, ex2
}

// WriteText renders the report in the classic console format: one overlap
// summary line per pair followed by the two difference lines (or one line
// per ranked example).
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if err := res.writeText(w, r.Ranked); err != nil {
			return err
		}
	}
	return nil
}

func (res *Result) writeText(w io.Writer, ranked bool) error {
	_, err := fmt.Fprintf(w, "%s (%d) / %s (%d): overlap %d (%.1f%%/%.1f%%)\n",
		res.Name1, res.Size1, res.Name2, res.Size2,
		res.Intersection, 100*res.Coverage1, 100*res.Coverage2)
	if err != nil {
		return err
	}

	if !ranked {
		if _, err := fmt.Fprintf(w, "%s \\ %s: %s\n", res.Name1, res.Name2, strings.Join(res.Sample1, " ")); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s \\ %s: %s\n", res.Name2, res.Name1, strings.Join(res.Sample2, " "))
		return err
	}

	for _, ex := range res.Ranked1 {
		if _, err := fmt.Fprintf(w, "%s \\ %s: %s (rank %d)\n", res.Name1, res.Name2, ex.Token, ex.Rank); err != nil {
			return err
		}
	}
	for _, ex := range res.Ranked2 {
		if _, err := fmt.Fprintf(w, "%s \\ %s: %s (rank %d)\n", res.Name2, res.Name1, ex.Token, ex.Rank); err != nil {
			return err
		}
	}
	return nil
}
