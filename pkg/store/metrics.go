package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks lookups that found a card.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "msevents_cache_hits_total",
			Help: "Total number of card store hits",
		},
	)

	// CacheMisses tracks lookups that found nothing.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "msevents_cache_misses_total",
			Help: "Total number of card store misses",
		},
	)

	// CacheEntries tracks the current number of indexed cards.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "msevents_cache_entries",
			Help: "Current number of cards in the store",
		},
	)
)
