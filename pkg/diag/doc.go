/*
Package diag provides the diagnostics channel shared by the vocabcmp
pipeline components.

Components never log through ambient global state. Instead, a Reporter is
passed in explicitly, which keeps each component testable in isolation and
lets a test harness capture warnings as structured values:

	rec := &diag.Recorder{}
	v, err := vocab.Load("vocab.txt", rec)
	// rec.Entries now holds every warning and summary the loader emitted

The CLI wires a WriterReporter pointed at stderr, so human-readable
diagnostics stay separate from the comparison report on stdout.

Run statistics (tokens loaded, warnings, comparisons performed) are counted
on a private Prometheus registry via Metrics and can be dumped at the end of
a run. There is no scrape endpoint; the tool is a single-pass batch process.
*/
package diag
