// Vocabcmp compares WordPiece-style subword vocabularies.
//
// It loads two or more vocabulary files, filters out special and
// placeholder tokens, sanity-checks the remaining entries against basic
// tokenization, and reports pairwise overlap and set differences — either
// as random samples or ranked by token frequency in a reference corpus.
//
// Usage:
//
//	# Compare two vocabularies, sampling the differences
//	vocabcmp compare bert-base.txt bert-large.txt
//
//	# Rank the differences by frequency in a reference corpus
//	vocabcmp compare -t corpus.txt bert-base.txt biobert.txt
//
//	# Sanity-check a single vocabulary
//	vocabcmp check bert-base.txt
//
//	# Re-run automatically when the inputs change
//	vocabcmp compare --watch bert-base.txt bert-large.txt
//
// The comparison report goes to stdout; per-file load summaries, filter
// counts, and consistency warnings go to stderr.
package main

func main() {
	Execute()
}
