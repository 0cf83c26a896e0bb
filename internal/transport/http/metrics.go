package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ttapi_conversions_total",
		Help: "Timetable conversions by outcome.",
	}, []string{"endpoint", "status"})

	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ttapi_parse_duration_seconds",
		Help:    "End-to-end duration of upload parsing.",
		Buckets: prometheus.DefBuckets,
	})
)
