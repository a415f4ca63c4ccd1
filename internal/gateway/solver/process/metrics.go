package process

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SolverRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solver_run_duration_seconds",
			Help:    "Duration of external route solver runs",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)

	SolverFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solver_failures_total",
			Help: "Total number of failed external route solver runs",
		},
		[]string{"reason"},
	)

	SolverInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solver_in_flight",
			Help: "Number of external route solver processes currently running",
		},
	)
)
