// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package observability holds the Prometheus instrumentation for the
// lookup pipelines.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the location
// and weather lookups.
type Metrics struct {
	// IPLookupAttempts counts individual fallback-chain attempts.
	// Labels: service={ipapi,ip-api,ipinfo}, outcome={success,failure}.
	IPLookupAttempts *prometheus.CounterVec
	// IPLookupExhausted counts resolutions where every service failed.
	IPLookupExhausted prometheus.Counter
	// WeatherRequests counts provider calls.
	// Labels: operation={search,coords}, outcome={success,failure}.
	WeatherRequests *prometheus.CounterVec
	// ProviderDuration observes the latency of external API calls.
	// Labels: api={openweather,ip-geolocation}.
	ProviderDuration *prometheus.HistogramVec
}

// NewMetrics creates all metrics and registers them with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.IPLookupAttempts,
		m.IPLookupExhausted,
		m.WeatherRequests,
		m.ProviderDuration,
	)
	return m
}

// NewMetricsForTesting creates all metrics without registering them, so
// parallel tests do not collide on the default registry.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		IPLookupAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nalssi",
			Name:      "ip_lookup_attempts_total",
			Help:      "Fallback-chain attempts per IP geolocation service.",
		}, []string{"service", "outcome"}),
		IPLookupExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nalssi",
			Name:      "ip_lookup_exhausted_total",
			Help:      "IP resolutions where all fallback services failed.",
		}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nalssi",
			Name:      "weather_requests_total",
			Help:      "Weather provider calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nalssi",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of external API calls.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"api"}),
	}
}
