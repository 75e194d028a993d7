// Package metrics holds the prometheus collectors for cell enrichment.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Step outcomes recorded in StepsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeFallback = "fallback"
)

var (
	StepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrich_steps_total",
			Help: "Total number of pipeline steps executed, by step and outcome",
		},
		[]string{"step", "outcome"},
	)

	StepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrich_step_duration_seconds",
			Help:    "Duration of pipeline steps in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"step"},
	)

	CellsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrich_cells_total",
			Help: "Total number of cell enrichments, by outcome",
		},
		[]string{"outcome"},
	)

	CellsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "enrich_cells_active",
			Help: "Number of cell enrichments in flight",
		},
	)
)
