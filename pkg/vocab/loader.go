package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"vocabtools/vocabcmp/pkg/cli"
	"vocabtools/vocabcmp/pkg/diag"
)

// Load reads a vocabulary file, one token per non-blank line, with the
// trailing newline stripped. Blank or whitespace-only lines are skipped
// with a warning. Lines containing interior whitespace are kept as tokens
// but warned about, since they usually indicate a malformed vocabulary
// file. A summary line is reported once the file is read.
//
// Returns a *cli.FileError if the file cannot be opened or read.
func Load(path string, reporter diag.Reporter) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cli.NewFileError(path, err)
	}
	defer f.Close()

	v, err := Read(f, path, reporter)
	if err != nil {
		return nil, cli.NewFileError(path, err)
	}
	return v, nil
}

// Read reads a vocabulary from r, attributing diagnostics to name.
func Read(r io.Reader, name string, reporter diag.Reporter) (*Vocabulary, error) {
	var tokens []string

	scanner := bufio.NewScanner(r)
	for ln := 1; scanner.Scan(); ln++ {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			reporter.Warnf("skipping empty line %d in %s: %q", ln, name, line)
			continue
		}
		if strings.ContainsFunc(line, unicode.IsSpace) {
			reporter.Warnf("token on line %d in %s contains whitespace: %q", ln, name, line)
		}

		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	reporter.Infof("read %d from %s", len(tokens), name)

	return &Vocabulary{Name: name, Tokens: tokens}, nil
}
