// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the scorer's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	daysScored     *prometheus.CounterVec
	windowDuration *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
}

// MustNewMetrics registers the scorer collectors with reg (the default
// registerer when nil). Collectors already registered under the same name
// are reused; any other registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		daysScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saju",
			Subsystem: "window",
			Name:      "days_scored_total",
			Help:      "Calendar days scored, by event type.",
		}, []string{"event"}),
		windowDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "saju",
			Subsystem: "window",
			Name:      "score_duration_seconds",
			Help:      "Time spent scoring one date range.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saju",
			Subsystem: "window",
			Name:      "analysis_cache_lookups_total",
			Help:      "Per-day analysis cache lookups, by result.",
		}, []string{"result"}),
	}
	m.daysScored = register(reg, m.daysScored)
	m.windowDuration = register(reg, m.windowDuration)
	m.cacheLookups = register(reg, m.cacheLookups)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) observeWindow(event EventType, days int, d time.Duration) {
	if m == nil {
		return
	}
	m.daysScored.WithLabelValues(event.String()).Add(float64(days))
	m.windowDuration.WithLabelValues(event.String()).Observe(d.Seconds())
}

func (m *Metrics) cacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
