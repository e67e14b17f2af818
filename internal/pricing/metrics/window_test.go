package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatencyWindowEvictsOldest(t *testing.T) {
	w := NewLatencyWindow(3)
	w.Record(10 * time.Millisecond)
	w.Record(20 * time.Millisecond)
	w.Record(30 * time.Millisecond)
	w.Record(40 * time.Millisecond)
	assert.Equal(t, 3, w.Len())
}

func TestLatencyWindowPercentiles(t *testing.T) {
	w := NewLatencyWindow(100)
	for i := 1; i <= 100; i++ {
		w.Record(time.Duration(i) * time.Millisecond)
	}
	p50, p95, p99 := w.Percentiles()
	assert.InDelta(t, 51, p50.Milliseconds(), 2)
	assert.InDelta(t, 96, p95.Milliseconds(), 2)
	assert.InDelta(t, 100, p99.Milliseconds(), 2)
}

func TestLatencyWindowEmpty(t *testing.T) {
	w := NewLatencyWindow(10)
	assert.Equal(t, time.Duration(0), w.P95())
}

func TestRecentWindowCountBound(t *testing.T) {
	w := NewRecentWindow(time.Minute, 5)
	for i := 0; i < 10; i++ {
		w.Record(RequestSample{At: time.Now(), Failed: i%2 == 0})
	}
	snap := w.Query(NewLatencyWindow(10))
	// only the newest 5 samples stay in the window: rps = 5 / 60s.
	assert.InDelta(t, 5.0/60.0, snap.RPS, 1e-9)
	assert.LessOrEqual(t, snap.TotalRequests, uint64(10))
	assert.Equal(t, uint64(10), snap.TotalRequests)
}

func TestRecentWindowAgeBound(t *testing.T) {
	w := NewRecentWindow(10*time.Millisecond, 1000)
	w.Record(RequestSample{At: time.Now().Add(-time.Second), Failed: false})
	time.Sleep(20 * time.Millisecond)
	w.Record(RequestSample{At: time.Now(), Failed: false})
	snap := w.Query(NewLatencyWindow(10))
	// first sample aged out of the bounded window, but lifetime counters
	// still reflect both records.
	assert.Equal(t, uint64(2), snap.TotalRequests)
}

func TestRecentWindowErrorRate(t *testing.T) {
	w := NewRecentWindow(time.Minute, 1000)
	w.Record(RequestSample{At: time.Now(), Failed: true})
	w.Record(RequestSample{At: time.Now(), Failed: false})
	snap := w.Query(NewLatencyWindow(10))
	assert.InDelta(t, 50.0, snap.ErrorRatePct, 0.01)
}
