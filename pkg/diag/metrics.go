package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pipeline activity on a private Prometheus registry.
// Counters only; the tool is a bounded batch process with no scrape endpoint,
// so the registry is gathered once and dumped as text when requested.
type Metrics struct {
	registry *prometheus.Registry

	tokensLoaded *prometheus.CounterVec
	warnings     prometheus.Counter
	comparisons  prometheus.Counter
}

// NewMetrics creates a Metrics instance registered on the given registry.
// If registry is nil, a new private registry is used.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		tokensLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vocabcmp_tokens_loaded_total",
				Help: "Number of vocabulary tokens loaded, by source file",
			},
			[]string{"source"},
		),
		warnings: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vocabcmp_warnings_total",
				Help: "Number of diagnostic warnings emitted",
			},
		),
		comparisons: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vocabcmp_comparisons_total",
				Help: "Number of pairwise vocabulary comparisons performed",
			},
		),
	}

	registry.MustRegister(m.tokensLoaded, m.warnings, m.comparisons)
	return m
}

// AddTokensLoaded records n tokens loaded from the given source file.
func (m *Metrics) AddTokensLoaded(source string, n int) {
	m.tokensLoaded.WithLabelValues(source).Add(float64(n))
}

// IncWarning records one emitted warning.
func (m *Metrics) IncWarning() {
	m.warnings.Inc()
}

// IncComparison records one completed pairwise comparison.
func (m *Metrics) IncComparison() {
	m.comparisons.Inc()
}

// Dump gathers the registry and writes every counter as a
// "name{labels} value" line, sorted by metric name.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}

			name := family.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			if _, err := fmt.Fprintf(w, "%s %g\n", name, metric.GetCounter().GetValue()); err != nil {
				return err
			}
		}
	}

	return nil
}
