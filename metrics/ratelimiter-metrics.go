// Package metrics tracks consume decisions across limiters.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// RateLimitMetrics counts consume decisions, both as cheap atomic totals and
// as a prometheus counter labelled by limiter key and outcome.
type RateLimitMetrics struct {
	TotalRequests    int64
	RejectedRequests int64
	AllowedRequests  int64

	Decisions *prometheus.CounterVec
}

// NewRateLimitMetrics creates the decision counters and registers them with
// reg. A nil reg leaves the prometheus counters unregistered but functional.
func NewRateLimitMetrics(reg prometheus.Registerer) *RateLimitMetrics {
	m := &RateLimitMetrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratelimiter_decisions_total",
				Help: "Total consume decisions by limiter key and outcome",
			},
			[]string{"limiter_key", "outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Decisions)
	}
	return m
}

// RecordRequest counts one consume decision for the given limiter key.
func (r *RateLimitMetrics) RecordRequest(key string, allowed bool) {
	atomic.AddInt64(&r.TotalRequests, 1)
	if allowed {
		atomic.AddInt64(&r.AllowedRequests, 1)
		r.Decisions.WithLabelValues(key, "allowed").Inc()
	} else {
		atomic.AddInt64(&r.RejectedRequests, 1)
		r.Decisions.WithLabelValues(key, "rejected").Inc()
	}
}
