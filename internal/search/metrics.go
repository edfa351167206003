package search

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the Prometheus collectors a solve registers. The core
// package never touches these: it has no notion of a "solve" as a unit of
// work, only of state transitions, so all observability lives here.
type Metrics struct {
	Conflicts    prometheus.Counter
	Restarts     prometheus.Counter
	Decisions    prometheus.Counter
	Propagations prometheus.Counter
	LearnedSize  prometheus.Histogram
}

// NewMetrics constructs a Metrics bound to the given registerer. Passing a
// fresh prometheus.NewRegistry() per solve (rather than the global default
// registerer) keeps repeated solves in the same process from colliding on
// duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdcl_conflicts_total",
			Help: "Total number of conflicts encountered during search.",
		}),
		Restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdcl_restarts_total",
			Help: "Total number of restarts performed during search.",
		}),
		Decisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdcl_decisions_total",
			Help: "Total number of decision literals assigned during search.",
		}),
		Propagations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdcl_propagations_total",
			Help: "Total number of literals assigned via unit resolution.",
		}),
		LearnedSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cdcl_learned_clause_literals",
			Help:    "Size, in literals, of each learned clause.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(m.Conflicts, m.Restarts, m.Decisions, m.Propagations, m.LearnedSize)
	return m
}
