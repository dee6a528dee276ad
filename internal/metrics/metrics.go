// Package metrics exposes Prometheus instrumentation for chain builds.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildsTotal counts completed chain builds by outcome.
	BuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainbuild_builds_total",
		Help: "Total number of chain builds attempted",
	}, []string{"result"})

	// BuildDuration tracks wall-clock time per chain build.
	BuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chainbuild_build_duration_seconds",
		Help:    "Histogram of chain-build durations",
		Buckets: prometheus.DefBuckets,
	})

	// BytesWritten tracks the size of the serialized chain per build.
	BytesWritten = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chainbuild_bytes_written",
		Help:    "Histogram of output chain size in bytes",
		Buckets: prometheus.ExponentialBuckets(64, 2, 10),
	})

	// ResolverQueriesTotal counts resolver queries by record type.
	ResolverQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainbuild_resolver_queries_total",
		Help: "Total number of resolver queries issued",
	}, []string{"rrtype"})

	// DirectKeyedZonesTotal counts zones emitted using the direct-keying
	// optimisation, across all builds.
	DirectKeyedZonesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainbuild_direct_keyed_zones_total",
		Help: "Total number of zones emitted with direct-keying",
	})
)
