package api

import (
	"learn.tokenbucket/metrics"
	"learn.tokenbucket/types"
)

// instrumentedLimiter records the outcome of every Consume call.
type instrumentedLimiter struct {
	inner   types.Limiter
	metrics *metrics.RateLimitMetrics
}

// Instrument wraps a limiter so every admit/deny decision is counted under
// the limiter's key. Read-only operations pass through unrecorded.
func Instrument(limiter types.Limiter, m *metrics.RateLimitMetrics) types.Limiter {
	return &instrumentedLimiter{inner: limiter, metrics: m}
}

func (il *instrumentedLimiter) Consume() bool {
	allowed := il.inner.Consume()
	il.metrics.RecordRequest(il.inner.Key(), allowed)
	return allowed
}

func (il *instrumentedLimiter) Tokens() int {
	return il.inner.Tokens()
}

func (il *instrumentedLimiter) Key() string {
	return il.inner.Key()
}

func (il *instrumentedLimiter) Snapshot() types.Snapshot {
	return il.inner.Snapshot()
}
