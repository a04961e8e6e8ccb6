// Package observability holds Prometheus metrics and OpenTelemetry tracing
// setup for the blog API.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zeme_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheRequests counts cache lookups by outcome (hit/miss).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zeme_cache_requests_total",
		Help: "Total number of cache lookups by outcome",
	}, []string{"outcome"})

	// UploadsTotal counts media uploads by result.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zeme_uploads_total",
		Help: "Total number of media uploads by result",
	}, []string{"result"})

	// UploadBytes records uploaded object sizes.
	UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "zeme_upload_bytes",
		Help:    "Size distribution of uploaded objects in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)
