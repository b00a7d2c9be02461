package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"vocabtools/vocabcmp/pkg/cli"
	"vocabtools/vocabcmp/pkg/tokenize"
)

// Table maps basic tokens to their occurrence counts in a reference corpus.
// Construction is commutative (order of Add calls does not change counts),
// but the table records first-occurrence order for deterministic ranking.
type Table struct {
	counts map[string]int
	order  []string
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add records one occurrence of token. Empty and whitespace-only tokens
// are ignored.
func (t *Table) Add(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	if _, seen := t.counts[token]; !seen {
		t.order = append(t.order, token)
	}
	t.counts[token]++
}

// Count returns the number of occurrences of token, zero if absent.
func (t *Table) Count(token string) int {
	return t.counts[token]
}

// Contains reports whether token occurs in the corpus.
func (t *Table) Contains(token string) bool {
	_, ok := t.counts[token]
	return ok
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.counts)
}

// Entry pairs a token with its occurrence count.
type Entry struct {
	Token string
	Count int
}

// Ranked returns all entries ordered by descending count. Ties are broken
// by first occurrence in the corpus, so the ranking is deterministic for a
// given input text.
func (t *Table) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, tok := range t.order {
		entries = append(entries, Entry{Token: tok, Count: t.counts[tok]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// FromFile builds a Table from a newline-delimited reference text, basic-
// tokenizing each line with tok. Returns a *cli.FileError if the file
// cannot be opened or read.
func FromFile(path string, tok tokenize.Tokenizer) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cli.NewFileError(path, err)
	}
	defer f.Close()

	t, err := FromReader(f, tok)
	if err != nil {
		return nil, cli.NewFileError(path, err)
	}
	return t, nil
}

// FromReader builds a Table from r, basic-tokenizing each line with tok.
func FromReader(r io.Reader, tok tokenize.Tokenizer) (*Table, error) {
	t := NewTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, token := range tok.Tokenize(scanner.Text()) {
			t.Add(token)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	return t, nil
}
