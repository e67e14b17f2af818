// Package pool implements the adaptive worker pool shared by every
// component that needs bounded, elastically-sized concurrency: a bounded
// task queue, a worker count that scales between min and max in fixed
// steps driven by a p95-latency controller, and anti-flap cooldown between
// scaling decisions.
package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/quoteforge/platform/internal/pricing/metrics"
)

// ErrQueueFull is returned by Submit when the bounded queue has no room and
// the task is rejected synchronously rather than buffered unbounded.
var ErrQueueFull = errors.New("pool: queue is full")

// Config configures one Pool instance.
type Config struct {
	QueueCapacity int
	MinWorkers    int
	MaxWorkers    int
	Step          int
	TargetUpMs    int
	TargetDownMs  int
	TickInterval  time.Duration
	Cooldown      time.Duration
	IdleTimeout   time.Duration
}

// DefaultConfig matches the spec's stated defaults.
func DefaultConfig() Config {
	return Config{
		QueueCapacity: 2048,
		MinWorkers:    8,
		MaxWorkers:    64,
		Step:          8,
		TargetUpMs:    250,
		TargetDownMs:  200,
		TickInterval:  5 * time.Second,
		Cooldown:      20 * time.Second,
		IdleTimeout:   60 * time.Second,
	}
}

// task wraps one unit of work submitted to the pool. Recording latency
// samples is left to the submitted function itself.
type task struct {
	fn func(ctx context.Context)
}

// Pool is an adaptive bounded worker pool. Workers pull from a single
// buffered channel standing in for the bounded queue; size changes spawn or
// retire workers without aborting in-flight tasks.
type Pool struct {
	cfg Config
	log zerolog.Logger

	queue chan task

	mu          sync.Mutex
	current     int
	active      int32
	stop        chan struct{}
	workerStop  []chan struct{}
	lastScaleAt time.Time

	latency *metrics.LatencyWindow

	wg sync.WaitGroup
}

// New builds a Pool started at cfg.MinWorkers, reading p95 from latency.
func New(cfg Config, latency *metrics.LatencyWindow, logger zerolog.Logger) *Pool {
	p := &Pool{
		cfg:     cfg,
		log:     logger.With().Str("component", "worker_pool").Logger(),
		queue:   make(chan task, cfg.QueueCapacity),
		latency: latency,
		stop:    make(chan struct{}),
	}
	p.mu.Lock()
	for i := 0; i < cfg.MinWorkers; i++ {
		p.spawnWorkerLocked()
	}
	p.mu.Unlock()
	return p
}

// Submit enqueues fn for execution by a worker. It returns ErrQueueFull
// immediately if the queue has no capacity, never blocking the caller.
func (p *Pool) Submit(fn func(ctx context.Context)) error {
	select {
	case p.queue <- task{fn: fn}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *Pool) spawnWorkerLocked() {
	stopCh := make(chan struct{})
	p.workerStop = append(p.workerStop, stopCh)
	p.current++
	p.wg.Add(1)
	go p.runWorker(stopCh)
}

func (p *Pool) runWorker(stopCh chan struct{}) {
	defer p.wg.Done()
	idle := time.NewTimer(p.cfg.IdleTimeout)
	defer idle.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-p.stop:
			return
		case t := <-p.queue:
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			atomic.AddInt32(&p.active, 1)
			t.fn(context.Background())
			atomic.AddInt32(&p.active, -1)
			idle.Reset(p.cfg.IdleTimeout)
		case <-idle.C:
			// idle worker above min_threads retires; once current is at
			// min, tryRetireIdle refuses and the worker re-arms its timer,
			// so idle retirement never takes the pool below min.
			if p.tryRetireIdle(stopCh) {
				return
			}
			idle.Reset(p.cfg.IdleTimeout)
		}
	}
}

func (p *Pool) tryRetireIdle(self chan struct{}) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current <= p.cfg.MinWorkers {
		return false
	}
	for i, ch := range p.workerStop {
		if ch == self {
			p.workerStop = append(p.workerStop[:i], p.workerStop[i+1:]...)
			p.current--
			return true
		}
	}
	return false
}

// Size returns the current worker count.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Active returns the number of workers currently executing a task.
func (p *Pool) Active() int {
	return int(atomic.LoadInt32(&p.active))
}

// QueueDepth returns the number of tasks waiting in the queue.
func (p *Pool) QueueDepth() int {
	return len(p.queue)
}

func (p *Pool) resize(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if delta > 0 {
		target := p.current + delta
		if target > p.cfg.MaxWorkers {
			target = p.cfg.MaxWorkers
		}
		for p.current < target {
			p.spawnWorkerLocked()
		}
		return
	}

	target := p.current + delta
	if target < p.cfg.MinWorkers {
		target = p.cfg.MinWorkers
	}
	for p.current > target && len(p.workerStop) > 0 {
		last := len(p.workerStop) - 1
		ch := p.workerStop[last]
		p.workerStop = p.workerStop[:last]
		close(ch)
		p.current--
	}
}

// RunController starts the 5-second-tick autoscaler loop described in the
// spec: scale up on high p95, scale down on low p95 with active workers
// under 70% of current, never within cooldown of the previous action. It
// blocks until ctx is cancelled.
func (p *Pool) RunController(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Pool) tick() {
	p95 := p.latency.P95()
	current := p.Size()
	active := p.Active()
	depth := p.QueueDepth()

	p.log.Info().
		Dur("p95", p95).
		Int("pool_size", current).
		Int("active", active).
		Int("queue_depth", depth).
		Msg("autoscaler tick")

	p.mu.Lock()
	sinceLast := time.Since(p.lastScaleAt)
	inCooldown := p.lastScaleAt.IsZero() == false && sinceLast < p.cfg.Cooldown
	p.mu.Unlock()

	if inCooldown {
		return
	}

	p95ms := p95.Milliseconds()

	switch {
	case p95ms > int64(p.cfg.TargetUpMs) && current < p.cfg.MaxWorkers:
		p.resize(p.cfg.Step)
		p.markScaled()
	case p95ms < int64(p.cfg.TargetDownMs) && current > p.cfg.MinWorkers && float64(active) < 0.70*float64(current):
		p.resize(-p.cfg.Step)
		p.markScaled()
	}
}

func (p *Pool) markScaled() {
	p.mu.Lock()
	p.lastScaleAt = time.Now()
	p.mu.Unlock()
}

// Close stops all workers and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	close(p.stop)
	p.wg.Wait()
}
