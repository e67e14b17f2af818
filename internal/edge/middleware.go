// Package edge implements the Edge Bridge: the HTTP surface browsers talk
// to, translating to the Pricing Aggregator and Checkout Engine RPCs
// underneath.
package edge

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type contextKey string

const requestIDKey contextKey = "request_id"

const (
	requestIDHeader      = "X-Request-ID"
	requestIDMetadataKey = "x-request-id"
)

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// requestIDMiddleware adopts the inbound X-Request-ID if present, else
// mints a fresh uuid, attaches it to the request context and always
// echoes it back on the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := withRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLogMiddleware logs method/path/status/duration/request-id for
// every request, in the teacher's structured-field style.
func accessLogMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("duration_ms", time.Since(start)).
				Str("request_id", requestIDFrom(r.Context())).
				Msg("http request completed")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// rateLimitMiddleware enforces a process-wide token-bucket: capacity
// 2*qps, refill qps tokens/sec. Disabled entirely when enabled is false.
func rateLimitMiddleware(limiter *rate.Limiter, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(requestIDHeader, requestIDFrom(r.Context()))
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error":              "Rate limit exceeded",
				"retry_after_seconds": 1,
			})
		})
	}
}

// newLimiter builds the token bucket described in the spec: capacity
// 2*qps, refill qps tokens per second.
func newLimiter(qps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(qps), int(2*qps))
}
