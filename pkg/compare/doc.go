/*
Package compare computes pairwise overlap and set differences between
filtered vocabularies.

For every unordered pair of input vocabularies (in input-list order) the
Comparator reports the two set sizes, the intersection size, and both
asymmetric coverage ratios. Difference examples come in two modes:

  - without a reference corpus, up to MaxExamples tokens are sampled
    uniformly at random (without replacement) from each one-sided
    difference, using an injected seedable random source
  - with a reference corpus, the frequency table is walked once in rank
    order and each token exclusive to one side is emitted with its 1-based
    rank, up to MaxExamples per side, stopping early once both sides are
    full; tokens absent from the corpus are never surfaced

The comparator never mutates its input vocabularies or the frequency table.
*/
package compare
