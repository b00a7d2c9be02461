/*
Package corpus builds basic-token frequency tables from reference texts.

A Table maps each basic token of the corpus to its occurrence count and
remembers the order in which tokens were first seen. Ranked returns the
entries by descending count with ties broken by first occurrence, which
pins down a deterministic ranking for equal-frequency tokens.

The table is built once from a newline-delimited text file and never
mutated afterwards; it only supplies ranking data to package compare.
*/
package corpus
