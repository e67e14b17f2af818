// Package idgen centralizes every identifier derivation rule the spec
// pins down exactly: vendor-id slugs, deterministic product ids from free
// text, checkout ids, and request ids.
package idgen

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// VendorSlug lowercases name and strips non-alphanumerics, producing the
// vendor_id the spec requires ("vendor_id is a slug (lowercased,
// non-alphanumerics stripped)").
func VendorSlug(name string) string {
	lower := strings.ToLower(name)
	stripped := nonAlphanumeric.ReplaceAllString(lower, "")
	if stripped == "" {
		return "vendor"
	}
	return stripped
}

// StableHash returns a deterministic, platform-independent hash of s. Used
// both for the free-text-query -> product_id mapping at the Edge Bridge and
// for the vendor simulator's price-catalog-miss fallback.
func StableHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// ProductIDFromQuery maps free text to the deterministic product id
// "sku-" + (|stable_hash(lowercase(trim(q)))| mod 1000).
func ProductIDFromQuery(q string) string {
	normalized := strings.ToLower(strings.TrimSpace(q))
	n := StableHash(normalized) % 1000
	return fmt.Sprintf("sku-%d", n)
}

// RequestID mints a fresh request id for a call that didn't carry one in.
func RequestID() string {
	return uuid.New().String()
}

var checkoutSeq uint64

// CheckoutID allocates "checkout-<wall_ms>-<monotonic_seq>", matching the
// spec's Start semantics exactly. The sequence counter is process-wide and
// monotonically increasing, so two checkouts minted in the same millisecond
// still get distinct ids.
func CheckoutID() string {
	seq := atomic.AddUint64(&checkoutSeq, 1)
	return fmt.Sprintf("checkout-%d-%d", time.Now().UnixMilli(), seq)
}
