package normal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	translations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gomln_normal_translations_total",
		Help: "Total formula translations by normal form and outcome",
	}, []string{"form", "outcome"})

	clausesPerFormula = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gomln_normal_clauses_per_formula",
		Help:    "Number of clauses produced by a single translation",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"form"})

	limitExceeded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gomln_normal_limit_exceeded_total",
		Help: "Total translations aborted because a resource limit was reached",
	}, []string{"limit"})
)
