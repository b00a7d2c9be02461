package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer performs basic tokenization. The zero value is a cased
// tokenizer; set Lowercase for uncased models.
type Tokenizer struct {
	// Lowercase folds every token to lower case.
	Lowercase bool
}

// Tokenize splits s into basic tokens. Empty or whitespace-only input
// yields no tokens.
func (t Tokenizer) Tokenize(s string) []string {
	var tokens []string
	for _, w := range strings.FieldsFunc(isolateCJK(s), unicode.IsSpace) {
		// split on but keep punctuation
		var start int
		for start < len(w) {
			end := strings.IndexFunc(w[start:], unicode.IsPunct)
			if end < 0 {
				end = len(w) - start
			} else if end == 0 {
				// leading punctuation rune becomes its own token
				_, end = utf8.DecodeRuneInString(w[start:])
			}

			tok := w[start : start+end]
			if t.Lowercase {
				tok = strings.ToLower(tok)
			}
			tokens = append(tokens, tok)
			start += end
		}
	}
	return tokens
}

// isolateCJK pads CJK ideographs with spaces so each becomes its own token.
func isolateCJK(s string) string {
	if !strings.ContainsFunc(s, isCJK) {
		return s
	}

	runes := make([]rune, 0, len(s)+16)
	for _, r := range s {
		if isCJK(r) {
			runes = append(runes, ' ', r, ' ')
		} else {
			runes = append(runes, r)
		}
	}
	return string(runes)
}

// isCJK reports whether r is a CJK ideograph. Ranges follow the CJK Unified
// Ideographs blocks plus compatibility ideographs.
func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF,
		r >= 0x3400 && r <= 0x4DBF,
		r >= 0x20000 && r <= 0x2A6DF,
		r >= 0x2A700 && r <= 0x2B73F,
		r >= 0x2B740 && r <= 0x2B81F,
		r >= 0x2B820 && r <= 0x2CEAF,
		r >= 0xF900 && r <= 0xFAFF,
		r >= 0x2F800 && r <= 0x2FA1F:
		return true
	}
	return false
}
