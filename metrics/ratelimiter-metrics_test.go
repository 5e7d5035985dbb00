package metrics

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest(t *testing.T) {
	m := NewRateLimitMetrics(prometheus.NewRegistry())

	m.RecordRequest("user1", true)
	m.RecordRequest("user1", true)
	m.RecordRequest("user1", false)
	m.RecordRequest("user2", false)

	assert.EqualValues(t, 4, atomic.LoadInt64(&m.TotalRequests))
	assert.EqualValues(t, 2, atomic.LoadInt64(&m.AllowedRequests))
	assert.EqualValues(t, 2, atomic.LoadInt64(&m.RejectedRequests))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Decisions.WithLabelValues("user1", "allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("user1", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("user2", "rejected")))
}

func TestRecordRequest_NilRegisterer(t *testing.T) {
	m := NewRateLimitMetrics(nil)

	m.RecordRequest("user1", true)

	assert.EqualValues(t, 1, atomic.LoadInt64(&m.TotalRequests))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("user1", "allowed")))
}

func TestRecordRequest_Concurrent(t *testing.T) {
	m := NewRateLimitMetrics(prometheus.NewRegistry())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(allowed bool) {
			defer wg.Done()
			m.RecordRequest("user1", allowed)
		}(i%2 == 0)
	}
	wg.Wait()

	assert.EqualValues(t, 50, atomic.LoadInt64(&m.TotalRequests))
	assert.EqualValues(t, 25, atomic.LoadInt64(&m.AllowedRequests))
	assert.EqualValues(t, 25, atomic.LoadInt64(&m.RejectedRequests))
}
