package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOpDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_op_duration_seconds",
			Help:    "Duration of profile store operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	StoreOpErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_op_errors_total",
			Help: "Total number of profile store operation errors",
		},
		[]string{"operation", "error_type"},
	)

	StoreOpRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_op_retries_total",
			Help: "Total number of retried store tasks",
		},
	)

	ProfilesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profiles_created_total",
			Help: "Total number of profiles successfully created",
		},
	)

	ProfilesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "profiles_total",
			Help: "Number of profiles currently persisted",
		},
	)
)
