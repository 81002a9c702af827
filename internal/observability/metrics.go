// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics contains the ulidkit Prometheus metrics.
type Metrics struct {
	GeneratedTotal     prometheus.Counter
	ParseFailuresTotal *prometheus.CounterVec
	CASRetriesTotal    prometheus.Counter
	DuplicatesTotal    prometheus.Counter
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GeneratedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ulidkit_generated_total",
			Help: "Total number of ULIDs generated by stress runs",
		}),
		ParseFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ulidkit_parse_failures_total",
				Help: "Total number of rejected ULID strings by reason code",
			},
			[]string{"reason"},
		),
		CASRetriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ulidkit_source_cas_retries_total",
			Help: "Total number of lost compare-and-swap races in the random source",
		}),
		DuplicatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ulidkit_duplicates_total",
			Help: "Total number of duplicate ULIDs found by stress runs",
		}),
	}

	reg.MustRegister(m.GeneratedTotal, m.ParseFailuresTotal, m.CASRetriesTotal, m.DuplicatesTotal)
	return m
}

// RecordGenerated adds n to the generated counter.
func (m *Metrics) RecordGenerated(n int) {
	m.GeneratedTotal.Add(float64(n))
}

// RecordParseFailure counts one rejected string. An empty reason is recorded as "unknown".
func (m *Metrics) RecordParseFailure(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	m.ParseFailuresTotal.WithLabelValues(reason).Inc()
}
