package geo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "civicapi_zipcode_cache_hits_total",
		Help: "Number of zip code lookups served from cache.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "civicapi_zipcode_cache_misses_total",
		Help: "Number of zip code lookups that fell through to the database.",
	})
)
