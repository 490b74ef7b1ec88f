package aggregate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/springs/arrange"
)

// Metrics groups the Prometheus collectors updated by Solve.
// Collectors are registered on the Registerer given to NewMetrics, so tests
// and the CLI own private registries and nothing touches the global one.
type Metrics struct {
	// Records counts records by strategy.
	Records *prometheus.CounterVec
	// ParseErrors counts malformed lines.
	ParseErrors prometheus.Counter
	// Arrangements accumulates the counts themselves.
	Arrangements prometheus.Counter
	// States counts automaton states resolved.
	States prometheus.Counter
	// MemoHits counts automaton memo reuses.
	MemoHits prometheus.Counter
	// Duration tracks per-record counting latency.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "springs_records_total",
			Help: "Total records counted by strategy",
		}, []string{"strategy"}),
		ParseErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "springs_parse_errors_total",
			Help: "Total malformed input lines",
		}),
		Arrangements: f.NewCounter(prometheus.CounterOpts{
			Name: "springs_arrangements_total",
			Help: "Sum of arrangement counts over all records",
		}),
		States: f.NewCounter(prometheus.CounterOpts{
			Name: "springs_automaton_states_total",
			Help: "Total automaton states resolved",
		}),
		MemoHits: f.NewCounter(prometheus.CounterOpts{
			Name: "springs_automaton_memo_hits_total",
			Help: "Total automaton memo table hits",
		}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "springs_record_duration_seconds",
			Help:    "Per-record counting duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"strategy"}),
	}
}

// parseError records one malformed line. Nil-safe.
func (m *Metrics) parseError() {
	if m == nil {
		return
	}
	m.ParseErrors.Inc()
}

// observe records one counted record. Nil-safe.
func (m *Metrics) observe(s arrange.Strategy, count, states, hits uint64, d time.Duration) {
	if m == nil {
		return
	}
	label := s.String()
	m.Records.WithLabelValues(label).Inc()
	m.Arrangements.Add(float64(count))
	m.States.Add(float64(states))
	m.MemoHits.Add(float64(hits))
	m.Duration.WithLabelValues(label).Observe(d.Seconds())
}
