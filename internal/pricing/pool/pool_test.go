package pool

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteforge/platform/internal/pricing/metrics"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MinWorkers = 2
	cfg.MaxWorkers = 8
	cfg.Step = 2
	cfg.QueueCapacity = 4
	cfg.TickInterval = 10 * time.Millisecond
	cfg.Cooldown = 0
	cfg.IdleTimeout = 200 * time.Millisecond
	return cfg
}

func TestPoolStartsAtMin(t *testing.T) {
	p := New(testConfig(), metrics.NewLatencyWindow(100), zerolog.Nop())
	defer p.Close()
	assert.Equal(t, 2, p.Size())
}

func TestPoolExecutesSubmittedTasks(t *testing.T) {
	p := New(testConfig(), metrics.NewLatencyWindow(100), zerolog.Nop())
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		err := p.Submit(func(ctx context.Context) {
			defer wg.Done()
		})
		require.NoError(t, err)
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tasks did not complete in time")
	}
}

func TestPoolRejectsWhenQueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.MinWorkers = 0
	cfg.QueueCapacity = 1
	p := New(cfg, metrics.NewLatencyWindow(100), zerolog.Nop())
	defer p.Close()

	require.NoError(t, p.Submit(func(ctx context.Context) { time.Sleep(50 * time.Millisecond) }))
	err := p.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestControllerScalesUpOnHighP95(t *testing.T) {
	cfg := testConfig()
	window := metrics.NewLatencyWindow(100)
	for i := 0; i < 50; i++ {
		window.Record(400 * time.Millisecond)
	}
	p := New(cfg, window, zerolog.Nop())
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	p.RunController(ctx)

	assert.Greater(t, p.Size(), cfg.MinWorkers)
}

func TestResizeRespectsMaxAndMin(t *testing.T) {
	cfg := testConfig()
	p := New(cfg, metrics.NewLatencyWindow(100), zerolog.Nop())
	defer p.Close()

	p.resize(100)
	assert.Equal(t, cfg.MaxWorkers, p.Size())

	p.resize(-100)
	assert.Equal(t, cfg.MinWorkers, p.Size())
}
