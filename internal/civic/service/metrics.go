package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "civicapi_searches_total",
		Help: "Number of entity searches by outcome.",
	}, []string{"entity", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "civicapi_search_duration_seconds",
		Help:    "End-to-end entity search latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
)
