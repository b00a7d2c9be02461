/*
Package tokenize implements BERT-style basic tokenization: coarse,
whitespace- and punctuation-aware segmentation producing whole-word-ish
units.

Basic tokenization is the sanity reference for subword vocabularies. A
WordPiece vocabulary entry that decomposes into more than one basic token
cannot be produced by a tokenizer built on this segmentation, which is what
the consistency check in package vocab looks for.

Segmentation rules:

  - the text is split on Unicode whitespace
  - punctuation runes are emitted as standalone tokens and split the
    surrounding word
  - CJK ideographs are emitted as standalone tokens, matching BERT's
    treatment of Chinese text
  - optionally, tokens are folded to lower case (uncased models)

Tokenization is pure, deterministic, and stateless.
*/
package tokenize
