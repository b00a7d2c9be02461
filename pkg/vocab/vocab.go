package vocab

// Vocabulary is an ordered list of tokens read from a single source.
// Line order is preserved and duplicates are retained; downstream
// comparison operates on the Set view.
type Vocabulary struct {
	// Name identifies the source, usually the file path.
	Name string

	// Tokens holds the entries in source order.
	Tokens []string
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	return len(v.Tokens)
}

// Set returns a membership set over the tokens.
func (v *Vocabulary) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(v.Tokens))
	for _, t := range v.Tokens {
		set[t] = struct{}{}
	}
	return set
}
