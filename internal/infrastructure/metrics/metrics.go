package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification metrics, exported on /metrics via promhttp
var (
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_classifications_total",
		Help: "Number of classified messages by resulting intent.",
	}, []string{"intent"})

	ClassificationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "intent_classification_seconds",
		Help:    "Classification latency in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_result_cache_requests_total",
		Help: "Result cache lookups by outcome.",
	}, []string{"outcome"})

	VocabularyReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_vocabulary_reloads_total",
		Help: "Vocabulary reload attempts by outcome.",
	}, []string{"outcome"})
)
