/*
Package vocab handles loading, filtering, and sanity-checking WordPiece-style
subword vocabularies.

A vocabulary file is newline-delimited UTF-8 text, one token per line. Load
reads it into an ordered Vocabulary, skipping blank lines with a warning and
flagging tokens that contain interior whitespace.

Filter partitions a vocabulary into three disjoint subsets:

  - special tokens: a small closed set of reserved control tokens
    ([PAD], [UNK], [CLS], [SEP], [MASK] by default)
  - placeholder tokens: reserved-but-unassigned slots matching the
    [unusedN] pattern
  - ordinary tokens: everything else

Only ordinary tokens take part in comparison: special and placeholder
tokens are present in every compatible vocabulary and would dominate the
overlap signal uninformatively.

Checker flags ordinary entries that decompose into more than one basic
token after stripping the continuation marker ("##"). Such entries cannot
be produced by a tokenizer built on the same basic segmentation and usually
indicate a vocabulary/tokenizer mismatch. The check is purely advisory.
*/
package vocab
