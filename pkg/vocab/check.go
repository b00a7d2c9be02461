package vocab

import (
	"strings"

	"vocabtools/vocabcmp/pkg/diag"
	"vocabtools/vocabcmp/pkg/tokenize"
)

// DefaultContinuationMarker is the WordPiece prefix denoting a subword
// piece that continues a word rather than starting one.
const DefaultContinuationMarker = "##"

// Checker flags vocabulary entries that decompose into more than one basic
// token. The result is purely advisory and never feeds back into comparison.
type Checker struct {
	Tokenizer tokenize.Tokenizer

	// ContinuationMarker is stripped from the front of an entry before
	// tokenizing. Defaults to "##" when empty.
	ContinuationMarker string
}

// Check returns the multi-piece entries of v in source order. If any exist,
// a single warning naming the vocabulary, the count, and the full offending
// list is reported.
func (c Checker) Check(v *Vocabulary, reporter diag.Reporter) []string {
	marker := c.ContinuationMarker
	if marker == "" {
		marker = DefaultContinuationMarker
	}

	var multipiece []string
	for _, entry := range v.Tokens {
		t := strings.TrimPrefix(entry, marker)
		if len(c.Tokenizer.Tokenize(t)) > 1 {
			multipiece = append(multipiece, entry)
		}
	}

	if len(multipiece) > 0 {
		reporter.Warnf("%s contains %d items containing multiple basic tokens: %s",
			v.Name, len(multipiece), strings.Join(multipiece, " "))
	}

	return multipiece
}
