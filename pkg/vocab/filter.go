package vocab

import (
	"fmt"
	"regexp"

	"vocabtools/vocabcmp/pkg/diag"
)

// DefaultSpecialTokens is the closed set of BERT reserved control tokens.
var DefaultSpecialTokens = []string{"[PAD]", "[UNK]", "[CLS]", "[SEP]", "[MASK]"}

// DefaultPlaceholderPattern matches BERT's reserved-but-unassigned
// vocabulary slots ("[unused0]", "[unused993]", ...).
const DefaultPlaceholderPattern = `^\[unused[0-9]+\]$`

// Filter partitions vocabulary entries into special, placeholder, and
// ordinary tokens. Its predicates are pure; a Filter is safe for reuse
// across vocabularies.
type Filter struct {
	special     map[string]struct{}
	placeholder *regexp.Regexp
}

// NewFilter creates a Filter with the given special token set and
// placeholder pattern. Returns an error if the pattern does not compile.
func NewFilter(specialTokens []string, placeholderPattern string) (*Filter, error) {
	re, err := regexp.Compile(placeholderPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid placeholder pattern %q: %w", placeholderPattern, err)
	}

	special := make(map[string]struct{}, len(specialTokens))
	for _, t := range specialTokens {
		special[t] = struct{}{}
	}

	return &Filter{special: special, placeholder: re}, nil
}

// DefaultFilter creates a Filter with the BERT defaults.
func DefaultFilter() *Filter {
	f, err := NewFilter(DefaultSpecialTokens, DefaultPlaceholderPattern)
	if err != nil {
		panic(err) // the default pattern always compiles
	}
	return f
}

// IsSpecial reports whether token is a member of the reserved control set.
func (f *Filter) IsSpecial(token string) bool {
	_, ok := f.special[token]
	return ok
}

// IsPlaceholder reports whether token matches the placeholder pattern.
func (f *Filter) IsPlaceholder(token string) bool {
	return f.placeholder.MatchString(token)
}

// Partition holds the three disjoint subsets of a vocabulary. Every input
// token lands in exactly one subset, in source order.
type Partition struct {
	Special     []string
	Placeholder []string
	Ordinary    []string
}

// Partition splits tokens into the three subsets. Special membership is
// checked before the placeholder pattern, so a token can never land in both.
func (f *Filter) Partition(tokens []string) Partition {
	var p Partition
	for _, t := range tokens {
		switch {
		case f.IsSpecial(t):
			p.Special = append(p.Special, t)
		case f.IsPlaceholder(t):
			p.Placeholder = append(p.Placeholder, t)
		default:
			p.Ordinary = append(p.Ordinary, t)
		}
	}
	return p
}

// Apply partitions v and reports the three counts. The returned vocabulary
// carries the same name and only the ordinary tokens; v itself is not
// modified.
func (f *Filter) Apply(v *Vocabulary, reporter diag.Reporter) *Vocabulary {
	p := f.Partition(v.Tokens)
	reporter.Infof("%s: %d special, %d unused, %d other",
		v.Name, len(p.Special), len(p.Placeholder), len(p.Ordinary))
	return &Vocabulary{Name: v.Name, Tokens: p.Ordinary}
}
