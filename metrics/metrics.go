// Package metrics holds the Prometheus instruments of the planner. They are
// registered on the default registry and exposed by the server at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatrixRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ttrplan_matrix_rebuilds_total",
		Help: "Total number of full distance-matrix rebuilds.",
	})

	MatrixRebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ttrplan_matrix_rebuild_duration_ms",
		Help:    "Distance-matrix rebuild latency in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})

	Queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ttrplan_queries_total",
		Help: "Total number of planner queries, labelled by kind.",
	}, []string{"kind"})

	ConstraintChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ttrplan_constraint_changes_total",
		Help: "Total number of constraint-set mutations, labelled by set and operation.",
	}, []string{"set", "op"})

	CardAlternatives = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ttrplan_card_alternatives",
		Help:    "Number of color-requirement alternatives produced per card computation.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)

// Query kinds used as the "kind" label of Queries.
const (
	KindRoute     = "route"
	KindVisit     = "visit"
	KindBundle    = "bundle"
	KindExpansion = "expansion"
	KindCards     = "cards"
	KindReports   = "reports"
)
