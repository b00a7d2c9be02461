package compare

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"vocabtools/vocabcmp/pkg/corpus"
	"vocabtools/vocabcmp/pkg/diag"
	"vocabtools/vocabcmp/pkg/tokenize"
	"vocabtools/vocabcmp/pkg/vocab"
)

func vocabOf(name string, tokens ...string) *vocab.Vocabulary {
	return &vocab.Vocabulary{Name: name, Tokens: tokens}
}

func TestNewOverlap(t *testing.T) {
	a := vocabOf("a.txt", "a", "b", "c")
	b := vocabOf("b.txt", "b", "c", "d")

	ov, err := NewOverlap(a, b)
	if err != nil {
		t.Fatalf("NewOverlap failed: %v", err)
	}

	if ov.Size1 != 3 || ov.Size2 != 3 {
		t.Errorf("sizes = %d/%d, want 3/3", ov.Size1, ov.Size2)
	}
	if ov.Intersection != 2 {
		t.Errorf("intersection = %d, want 2", ov.Intersection)
	}
	if math.Abs(ov.Coverage1-2.0/3.0) > 1e-9 || math.Abs(ov.Coverage2-2.0/3.0) > 1e-9 {
		t.Errorf("coverage = %f/%f, want 2/3 each", ov.Coverage1, ov.Coverage2)
	}
}

func TestNewOverlap_Symmetric(t *testing.T) {
	a := vocabOf("a.txt", "a", "b", "c", "x", "y")
	b := vocabOf("b.txt", "b", "c")

	ab, err := NewOverlap(a, b)
	if err != nil {
		t.Fatalf("NewOverlap failed: %v", err)
	}
	ba, err := NewOverlap(b, a)
	if err != nil {
		t.Fatalf("NewOverlap failed: %v", err)
	}

	if ab.Intersection != ba.Intersection {
		t.Errorf("intersection not symmetric: %d vs %d", ab.Intersection, ba.Intersection)
	}
	if ab.Coverage1 != ba.Coverage2 || ab.Coverage2 != ba.Coverage1 {
		t.Errorf("coverage ratios not mirrored: %f/%f vs %f/%f",
			ab.Coverage1, ab.Coverage2, ba.Coverage1, ba.Coverage2)
	}

	for _, c := range []float64{ab.Coverage1, ab.Coverage2} {
		if c < 0 || c > 1 {
			t.Errorf("coverage %f outside [0,1]", c)
		}
	}
}

func TestNewOverlap_DuplicatesCollapse(t *testing.T) {
	a := vocabOf("a.txt", "a", "a", "b")
	b := vocabOf("b.txt", "b")

	ov, err := NewOverlap(a, b)
	if err != nil {
		t.Fatalf("NewOverlap failed: %v", err)
	}
	if ov.Size1 != 2 {
		t.Errorf("size1 = %d, want 2 (distinct tokens)", ov.Size1)
	}
}

func TestNewOverlap_EmptyVocabulary(t *testing.T) {
	a := vocabOf("a.txt", "a")
	empty := vocabOf("empty.txt")

	if _, err := NewOverlap(a, empty); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary, got %v", err)
	}
	if _, err := NewOverlap(empty, a); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestNewOverlap_Idempotent(t *testing.T) {
	a := vocabOf("a.txt", "a", "b", "c")
	b := vocabOf("b.txt", "b", "c", "d")

	first, err := NewOverlap(a, b)
	if err != nil {
		t.Fatalf("NewOverlap failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := NewOverlap(a, b)
		if err != nil {
			t.Fatalf("NewOverlap failed: %v", err)
		}
		if again != first {
			t.Fatalf("run %d produced different numbers: %+v vs %+v", i, again, first)
		}
	}
}

func TestMaxSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	population := []string{"a", "b", "c"}

	// Requesting more than the population returns everything.
	got := maxSample(rng, population, 10)
	if len(got) != 3 {
		t.Fatalf("sample size = %d, want 3", len(got))
	}

	seen := make(map[string]bool)
	for _, tok := range got {
		if seen[tok] {
			t.Errorf("duplicate %q in sample", tok)
		}
		seen[tok] = true
	}

	// Every sampled element is a genuine member.
	members := map[string]bool{"a": true, "b": true, "c": true}
	for _, tok := range got {
		if !members[tok] {
			t.Errorf("sampled %q is not in the population", tok)
		}
	}

	// Empty population never fails.
	if got := maxSample(rng, nil, 10); len(got) != 0 {
		t.Errorf("sample of empty population = %v, want empty", got)
	}

	// Exact cap.
	if got := maxSample(rng, []string{"a", "b", "c", "d"}, 2); len(got) != 2 {
		t.Errorf("sample size = %d, want 2", len(got))
	}
}

func TestComparator_UnrankedMode(t *testing.T) {
	c := &Comparator{Rand: rand.New(rand.NewSource(42))}

	a := vocabOf("a.txt", "a", "b", "c")
	b := vocabOf("b.txt", "b", "c", "d")

	res, err := c.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if len(res.Sample1) != 1 || res.Sample1[0] != "a" {
		t.Errorf("sample1 = %v, want [a]", res.Sample1)
	}
	if len(res.Sample2) != 1 || res.Sample2[0] != "d" {
		t.Errorf("sample2 = %v, want [d]", res.Sample2)
	}
	if res.Ranked1 != nil || res.Ranked2 != nil {
		t.Errorf("ranked fields populated in unranked mode")
	}
}

func TestComparator_RankedMode(t *testing.T) {
	var tok tokenize.Tokenizer
	table, err := corpus.FromReader(strings.NewReader("the cat sat on the mat\n"), tok)
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	// A contains "the" but not "cat"; B contains "cat" but not "the".
	a := vocabOf("a.txt", "the", "sat", "common")
	b := vocabOf("b.txt", "cat", "sat", "common")

	c := &Comparator{Table: table}
	res, err := c.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if len(res.Ranked1) != 1 || res.Ranked1[0] != (RankedExample{Token: "the", Rank: 1}) {
		t.Errorf("ranked1 = %v, want [{the 1}]", res.Ranked1)
	}
	if len(res.Ranked2) != 1 {
		t.Fatalf("ranked2 = %v, want one example", res.Ranked2)
	}
	if res.Ranked2[0].Token != "cat" || res.Ranked2[0].Rank < 2 {
		t.Errorf("ranked2 = %v, want cat at rank >= 2", res.Ranked2)
	}
	if res.Sample1 != nil || res.Sample2 != nil {
		t.Errorf("sample fields populated in ranked mode")
	}
}

func TestComparator_RankedModeOmitsTokensOutsideCorpus(t *testing.T) {
	var tok tokenize.Tokenizer
	table, err := corpus.FromReader(strings.NewReader("the cat\n"), tok)
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	// "zebra" differs between the vocabularies but never occurs in the
	// corpus, so ranked mode must not surface it.
	a := vocabOf("a.txt", "the", "zebra")
	b := vocabOf("b.txt", "the", "cat")

	c := &Comparator{Table: table}
	res, err := c.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	for _, ex := range res.Ranked1 {
		if ex.Token == "zebra" {
			t.Error("ranked mode surfaced a token absent from the corpus")
		}
		if !table.Contains(ex.Token) {
			t.Errorf("ranked token %q not in the frequency table", ex.Token)
		}
	}
}

func TestComparator_RankedModeNoDuplicates(t *testing.T) {
	var tok tokenize.Tokenizer
	table, err := corpus.FromReader(strings.NewReader("a a b b c c d e f\n"), tok)
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	a := vocabOf("a.txt", "a", "b", "c", "d", "e", "f")
	b := vocabOf("b.txt", "x")

	c := &Comparator{Table: table}
	res, err := c.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, ex := range res.Ranked1 {
		if seen[ex.Token] {
			t.Errorf("duplicate ranked token %q", ex.Token)
		}
		seen[ex.Token] = true
	}
}

func TestComparator_RankedModeEarlyStop(t *testing.T) {
	var tok tokenize.Tokenizer
	table, err := corpus.FromReader(strings.NewReader("one one one two two three\n"), tok)
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	// Both sides have more exclusive ranked tokens than the cap.
	a := vocabOf("a.txt", "one", "two", "three")
	b := vocabOf("b.txt", "other")

	c := &Comparator{Table: table, MaxExamples: 1}
	res, err := c.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if len(res.Ranked1) != 1 {
		t.Fatalf("ranked1 = %v, want exactly 1 example", res.Ranked1)
	}
	// Only the highest-ranked exclusive token survives the cap.
	if res.Ranked1[0] != (RankedExample{Token: "one", Rank: 1}) {
		t.Errorf("ranked1 = %v, want [{one 1}]", res.Ranked1)
	}
}

func TestComparator_Run(t *testing.T) {
	c := &Comparator{Rand: rand.New(rand.NewSource(1))}
	vocabs := []*vocab.Vocabulary{
		vocabOf("a.txt", "a", "b"),
		vocabOf("b.txt", "b", "c"),
		vocabOf("c.txt", "c", "d"),
	}

	rec := &diag.Recorder{}
	report := c.Run(vocabs, rec)

	if report.RunID == "" {
		t.Error("expected a run id")
	}
	if report.Ranked {
		t.Error("report marked ranked without a table")
	}

	// Three vocabularies yield three pairs, in input-list order.
	if len(report.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(report.Results))
	}
	wantPairs := [][2]string{
		{"a.txt", "b.txt"},
		{"a.txt", "c.txt"},
		{"b.txt", "c.txt"},
	}
	for i, want := range wantPairs {
		got := [2]string{report.Results[i].Name1, report.Results[i].Name2}
		if got != want {
			t.Errorf("pair %d = %v, want %v", i, got, want)
		}
	}
}

func TestComparator_RunSkipsEmptyVocabularies(t *testing.T) {
	c := &Comparator{Rand: rand.New(rand.NewSource(1))}
	vocabs := []*vocab.Vocabulary{
		vocabOf("a.txt", "a", "b"),
		vocabOf("empty.txt"),
		vocabOf("c.txt", "b", "c"),
	}

	rec := &diag.Recorder{}
	report := c.Run(vocabs, rec)

	// Only the a/c pair survives; both pairs involving the empty
	// vocabulary are skipped with warnings.
	if len(report.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(report.Results))
	}
	if got := len(rec.Warnings()); got != 2 {
		t.Errorf("warnings = %d, want 2: %v", got, rec.Warnings())
	}
}

func TestReport_WriteText(t *testing.T) {
	a := vocabOf("a.txt", "a", "b", "c")
	b := vocabOf("b.txt", "b", "c", "d")

	c := &Comparator{Rand: rand.New(rand.NewSource(7))}
	rec := &diag.Recorder{}
	report := c.Run([]*vocab.Vocabulary{a, b}, rec)

	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "a.txt (3) / b.txt (3): overlap 2 (66.7%/66.7%)") {
		t.Errorf("missing overlap line in:\n%s", out)
	}
	if !strings.Contains(out, "a.txt \\ b.txt: a") {
		t.Errorf("missing first difference line in:\n%s", out)
	}
	if !strings.Contains(out, "b.txt \\ a.txt: d") {
		t.Errorf("missing second difference line in:\n%s", out)
	}
}

func TestReport_WriteTextRanked(t *testing.T) {
	var tok tokenize.Tokenizer
	table, err := corpus.FromReader(strings.NewReader("the cat sat on the mat\n"), tok)
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	a := vocabOf("a.txt", "the", "sat")
	b := vocabOf("b.txt", "cat", "sat")

	c := &Comparator{Table: table}
	rec := &diag.Recorder{}
	report := c.Run([]*vocab.Vocabulary{a, b}, rec)

	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "a.txt \\ b.txt: the (rank 1)") {
		t.Errorf("missing ranked line for 'the' in:\n%s", out)
	}
	if !strings.Contains(out, "b.txt \\ a.txt: cat (rank 2)") {
		t.Errorf("missing ranked line for 'cat' in:\n%s", out)
	}
}
