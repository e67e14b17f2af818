package checkout

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// terminatedTTL is how long a terminated (COMPLETED or FAILED)
	// OrderStatus is kept reachable by GetStatus after it finishes, before
	// being evicted to bound memory. Resolves the open question of when
	// terminated state can be dropped.
	terminatedTTL = 30 * time.Minute
	cacheCleanup  = 5 * time.Minute

	// idempotencyTTL bounds how long an Idempotency-Key is remembered. A
	// Start call reusing a key within this window returns the original
	// checkout_id instead of spawning a second workflow. Resolves the
	// open question of idempotency-key handling.
	idempotencyTTL = 30 * time.Minute
)

// terminatedCache evicts finished OrderStatus entries out of the live map
// after terminatedTTL so a long-running process doesn't accumulate
// unbounded history for checkouts nobody is watching anymore.
type terminatedCache struct {
	c *cache.Cache
}

func newTerminatedCache() *terminatedCache {
	return &terminatedCache{c: cache.New(terminatedTTL, cacheCleanup)}
}

func (t *terminatedCache) markTerminated(checkoutID string) {
	t.c.Set(checkoutID, struct{}{}, cache.DefaultExpiration)
}

func (t *terminatedCache) onEvicted(fn func(checkoutID string)) {
	t.c.OnEvicted(func(key string, _ interface{}) {
		fn(key)
	})
}

// idempotencyCache maps an Idempotency-Key to the checkout_id it first
// produced, so Start can dedupe retried requests within idempotencyTTL.
type idempotencyCache struct {
	c *cache.Cache
}

func newIdempotencyCache() *idempotencyCache {
	return &idempotencyCache{c: cache.New(idempotencyTTL, cacheCleanup)}
}

func (i *idempotencyCache) lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v, found := i.c.Get(key)
	if !found {
		return "", false
	}
	return v.(string), true
}

func (i *idempotencyCache) remember(key, checkoutID string) {
	if key == "" {
		return
	}
	i.c.Set(key, checkoutID, cache.DefaultExpiration)
}
