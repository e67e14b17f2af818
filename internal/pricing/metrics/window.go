// Package metrics implements the Pricing Aggregator's traffic metrics
// subsystem: a bounded latency window the autoscaler controller reads for
// p95, a dual-bounded (age and count) recent-request window for rps/error
// rate, and monotonic lifetime counters.
package metrics

import (
	"runtime"
	"sort"
	"sync"
	"time"
)

// LatencySample is one completed vendor task's elapsed time, monotonic, not
// wall clock.
type LatencySample struct {
	Elapsed time.Duration
	At      time.Time
}

// RequestSample is one completed task outcome used for the rolling
// rps/error-rate window.
type RequestSample struct {
	At      time.Time
	Failed  bool
	Elapsed time.Duration
}

// LatencyWindow is a bounded FIFO of the last W latency samples, guarded by
// a mutex so pool workers writing concurrently with the autoscaler
// controller reading never race.
type LatencyWindow struct {
	mu       sync.Mutex
	capacity int
	samples  []LatencySample
}

// NewLatencyWindow builds a window holding at most capacity samples.
func NewLatencyWindow(capacity int) *LatencyWindow {
	if capacity <= 0 {
		capacity = 2000
	}
	return &LatencyWindow{capacity: capacity, samples: make([]LatencySample, 0, capacity)}
}

// Record appends one sample, dropping the oldest if the window is full.
func (w *LatencyWindow) Record(elapsed time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.samples) >= w.capacity {
		w.samples = w.samples[1:]
	}
	w.samples = append(w.samples, LatencySample{Elapsed: elapsed, At: time.Now()})
}

// P95 returns the 95th percentile elapsed duration over the current window,
// or 0 if the window is empty.
func (w *LatencyWindow) P95() time.Duration {
	return w.percentile(0.95)
}

// Percentiles returns p50, p95, p99 in one pass over a single sorted copy.
func (w *LatencyWindow) Percentiles() (p50, p95, p99 time.Duration) {
	w.mu.Lock()
	durations := make([]time.Duration, len(w.samples))
	for i, s := range w.samples {
		durations[i] = s.Elapsed
	}
	w.mu.Unlock()

	if len(durations) == 0 {
		return 0, 0, 0
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	return pick(durations, 0.50), pick(durations, 0.95), pick(durations, 0.99)
}

func (w *LatencyWindow) percentile(p float64) time.Duration {
	w.mu.Lock()
	durations := make([]time.Duration, len(w.samples))
	for i, s := range w.samples {
		durations[i] = s.Elapsed
	}
	w.mu.Unlock()
	if len(durations) == 0 {
		return 0
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	return pick(durations, p)
}

func pick(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Len reports the current sample count.
func (w *LatencyWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.samples)
}

// RecentWindow is the dual-bounded (age <= MaxAge, count <= MaxCount)
// FIFO behind rps/error_rate, plus the monotonically increasing lifetime
// counters.
type RecentWindow struct {
	mu      sync.Mutex
	maxAge  time.Duration
	maxLen  int
	samples []RequestSample

	totalRequests uint64
	totalErrors   uint64
}

// NewRecentWindow builds a window bounded by maxAge and maxLen.
func NewRecentWindow(maxAge time.Duration, maxLen int) *RecentWindow {
	if maxAge <= 0 {
		maxAge = 60 * time.Second
	}
	if maxLen <= 0 {
		maxLen = 1000
	}
	return &RecentWindow{maxAge: maxAge, maxLen: maxLen}
}

// Record appends one completed-task outcome and updates the lifetime
// counters, then evicts anything now outside either bound.
func (w *RecentWindow) Record(s RequestSample) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.samples = append(w.samples, s)
	w.totalRequests++
	if s.Failed {
		w.totalErrors++
	}
	w.evictLocked()
}

func (w *RecentWindow) evictLocked() {
	cutoff := time.Now().Add(-w.maxAge)
	start := 0
	for start < len(w.samples) && w.samples[start].At.Before(cutoff) {
		start++
	}
	if start > 0 {
		w.samples = w.samples[start:]
	}
	if len(w.samples) > w.maxLen {
		w.samples = w.samples[len(w.samples)-w.maxLen:]
	}
}

// Snapshot is the derived view of the recent window plus process gauges,
// computed once per query.
type Snapshot struct {
	RPS             float64
	ErrorRatePct    float64
	P50             time.Duration
	P95             time.Duration
	P99             time.Duration
	CPUUsageFrac    float64
	MemoryUsageFrac float64
	LoadAverage     float64
	TotalRequests   uint64
	TotalErrors     uint64
	Timestamp       time.Time
}

// Query computes the derived snapshot. latency is the pool's latency
// window (p50/p95/p99 come from there, per the spec's "sort of the current
// window's latencies").
func (w *RecentWindow) Query(latency *LatencyWindow) Snapshot {
	w.mu.Lock()
	w.evictLocked()
	count := len(w.samples)
	var failures int
	for _, s := range w.samples {
		if s.Failed {
			failures++
		}
	}
	totalRequests := w.totalRequests
	totalErrors := w.totalErrors
	maxAgeSeconds := w.maxAge.Seconds()
	w.mu.Unlock()

	var rps, errorRate float64
	if maxAgeSeconds > 0 {
		rps = float64(count) / maxAgeSeconds
	}
	if count > 0 {
		errorRate = float64(failures) / float64(count) * 100
	}

	p50, p95, p99 := latency.Percentiles()

	return Snapshot{
		RPS:             rps,
		ErrorRatePct:    errorRate,
		P50:             p50,
		P95:             p95,
		P99:             p99,
		CPUUsageFrac:    cpuFraction(),
		MemoryUsageFrac: heapFraction(),
		LoadAverage:     loadAverage(),
		TotalRequests:   totalRequests,
		TotalErrors:     totalErrors,
		Timestamp:       time.Now(),
	}
}

// cpuFraction approximates process CPU usage as goroutine count relative to
// GOMAXPROCS, clamped to [0,1]. There is no portable stdlib CPU-percent
// reading; this process never shells out to /proc for it, so the gauge is a
// coarse proxy rather than a true utilization percentage.
func cpuFraction() float64 {
	n := runtime.NumGoroutine()
	procs := runtime.GOMAXPROCS(0)
	if procs <= 0 {
		procs = 1
	}
	frac := float64(n) / float64(procs*50)
	if frac > 1 {
		frac = 1
	}
	return frac
}

// heapFraction reports heap-in-use relative to the total memory the Go
// runtime has obtained from the OS (MemStats.Sys), clamped to [0,1].
func heapFraction() float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.Sys == 0 {
		return 0
	}
	frac := float64(ms.HeapInuse) / float64(ms.Sys)
	if frac > 1 {
		frac = 1
	}
	return frac
}
