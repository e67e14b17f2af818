package pricing

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/quoteforge/platform/internal/vendorset"
)

// breakerSet lazily builds and caches one gobreaker.CircuitBreaker per
// configured vendor endpoint, so a vendor that is failing repeatedly stops
// eating the per-vendor deadline on every call instead of absorbing it
// silently every time.
type breakerSet struct {
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
	log      zerolog.Logger
}

func newBreakerSet(logger zerolog.Logger) *breakerSet {
	return &breakerSet{
		breakers: make(map[string]*gobreaker.CircuitBreaker),
		log:      logger.With().Str("component", "vendor_breaker").Logger(),
	}
}

func (b *breakerSet) forEndpoint(ep vendorset.Endpoint) *gobreaker.CircuitBreaker {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.breakers[ep.Addr()]; ok {
		return cb
	}

	name := ep.DisplayName
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     20 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			b.log.Warn().Str("vendor", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})
	b.breakers[ep.Addr()] = cb
	return cb
}
