package diag

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives diagnostic output from pipeline components.
// Warnings are advisory: they must never change comparison results.
type Reporter interface {
	// Infof reports a progress or summary line (e.g. "read 30522 from vocab.txt").
	Infof(format string, args ...any)

	// Warnf reports a non-fatal problem (e.g. a blank vocabulary line).
	Warnf(format string, args ...any)
}

// Level classifies a captured diagnostic entry.
type Level string

const (
	// LevelInfo marks summary and progress entries.
	LevelInfo Level = "info"
	// LevelWarning marks non-fatal problem entries.
	LevelWarning Level = "warning"
)

// WriterReporter writes diagnostics to a stream, one line per entry.
// Warnings are prefixed with "warning: " so they stand out in mixed output.
type WriterReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterReporter creates a reporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Infof writes a summary line.
func (r *WriterReporter) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Warnf writes a warning line.
func (r *WriterReporter) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "warning: "+format+"\n", args...)
}

// Entry is a single captured diagnostic.
type Entry struct {
	Level   Level
	Message string
}

// Recorder captures diagnostics as structured values. Intended for tests.
// The zero value is ready to use.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
}

// Infof records a summary entry.
func (r *Recorder) Infof(format string, args ...any) {
	r.record(LevelInfo, format, args...)
}

// Warnf records a warning entry.
func (r *Recorder) Warnf(format string, args ...any) {
	r.record(LevelWarning, format, args...)
}

func (r *Recorder) record(level Level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the messages of all recorded warning entries.
func (r *Recorder) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.Entries {
		if e.Level == LevelWarning {
			out = append(out, e.Message)
		}
	}
	return out
}

// countingReporter forwards to another reporter while counting warnings
// on a Metrics instance.
type countingReporter struct {
	next    Reporter
	metrics *Metrics
}

// CountWarnings wraps next so that every warning passing through is also
// counted on m.
func CountWarnings(next Reporter, m *Metrics) Reporter {
	return &countingReporter{next: next, metrics: m}
}

func (r *countingReporter) Infof(format string, args ...any) {
	r.next.Infof(format, args...)
}

func (r *countingReporter) Warnf(format string, args ...any) {
	r.metrics.IncWarning()
	r.next.Warnf(format, args...)
}
