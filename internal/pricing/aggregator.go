// Package pricing implements the Pricing Aggregator: the server-streaming
// fan-out over the configured vendor set, backed by an adaptive worker
// pool, a per-vendor circuit breaker, and the traffic metrics subsystem.
package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/quoteforge/platform/internal/pricing/metrics"
	"github.com/quoteforge/platform/internal/pricing/pool"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
	"github.com/quoteforge/platform/internal/vendorset"
)

func insecureCreds() credentials.TransportCredentials {
	return insecure.NewCredentials()
}

const (
	perVendorDeadline = 1500 * time.Millisecond
	aggregateTimeout  = 10 * time.Second
)

// Aggregator implements quotingv1.VendorPricingServer.
type Aggregator struct {
	quotingv1.UnimplementedVendorPricingServer

	endpoints []vendorset.Endpoint
	pool      *pool.Pool
	breakers  *breakerSet
	latency   *metrics.LatencyWindow
	recent    *metrics.RecentWindow
	log       zerolog.Logger

	dialMu sync.Mutex
	conns  map[string]*grpc.ClientConn
}

// New builds an Aggregator over the given static endpoint set.
func New(endpoints []vendorset.Endpoint, p *pool.Pool, latency *metrics.LatencyWindow, recent *metrics.RecentWindow, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		endpoints: endpoints,
		pool:      p,
		breakers:  newBreakerSet(logger),
		latency:   latency,
		recent:    recent,
		log:       logger.With().Str("component", "pricing_aggregator").Logger(),
		conns:     make(map[string]*grpc.ClientConn),
	}
}

func (a *Aggregator) dial(addr string) (*grpc.ClientConn, error) {
	a.dialMu.Lock()
	defer a.dialMu.Unlock()

	if conn, ok := a.conns[addr]; ok {
		return conn, nil
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecureCreds()))
	if err != nil {
		return nil, err
	}
	a.conns[addr] = conn
	return conn, nil
}

// StreamQuotes fans a single product query out to every configured vendor
// endpoint, funneling each successful quote through a single-writer channel
// so frames never interleave on the shared outgoing stream.
func (a *Aggregator) StreamQuotes(req *quotingv1.QuoteRequest, stream quotingv1.VendorPricing_StreamQuotesServer) error {
	if req.GetProductId() == "" {
		return status.Errorf(codes.InvalidArgument, "product_id is required")
	}

	endpoints := a.endpoints // snapshot: the configured set is stable for process lifetime

	ctx, cancel := context.WithTimeout(stream.Context(), aggregateTimeout)
	defer cancel()

	out := make(chan *quotingv1.PriceQuote, len(endpoints))

	var wg sync.WaitGroup
	for _, ep := range endpoints {
		ep := ep
		wg.Add(1)
		submitErr := a.pool.Submit(func(taskCtx context.Context) {
			defer wg.Done()
			quote, err := a.queryVendor(ctx, ep, req)
			if err != nil {
				a.log.Debug().Err(err).Str("vendor", ep.DisplayName).Msg("vendor task absorbed")
				return
			}
			select {
			case out <- quote:
			case <-ctx.Done():
			}
		})
		if submitErr != nil {
			wg.Done()
			a.log.Warn().Err(submitErr).Str("vendor", ep.DisplayName).Msg("vendor task rejected by pool")
			a.recent.Record(metrics.RequestSample{At: time.Now(), Failed: true})
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case q := <-out:
			if err := stream.Send(q); err != nil {
				return err
			}
		case <-done:
			// drain anything buffered between the wait completing and the
			// select observing it.
			for {
				select {
				case q := <-out:
					if err := stream.Send(q); err != nil {
						return err
					}
				default:
					return nil
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// queryVendor runs one vendor task end to end: dial (or reuse), issue
// GetQuote under the per-vendor deadline and the vendor's circuit breaker,
// and record one LatencySample/RequestSample regardless of outcome.
func (a *Aggregator) queryVendor(ctx context.Context, ep vendorset.Endpoint, req *quotingv1.QuoteRequest) (*quotingv1.PriceQuote, error) {
	start := time.Now()
	quote, err := a.callVendor(ctx, ep, req)
	elapsed := time.Since(start)

	a.latency.Record(elapsed)
	a.recent.Record(metrics.RequestSample{At: time.Now(), Failed: err != nil, Elapsed: elapsed})

	return quote, err
}

func (a *Aggregator) callVendor(ctx context.Context, ep vendorset.Endpoint, req *quotingv1.QuoteRequest) (*quotingv1.PriceQuote, error) {
	conn, err := a.dial(ep.Addr())
	if err != nil {
		return nil, err
	}

	cb := a.breakers.forEndpoint(ep)
	result, err := cb.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, perVendorDeadline)
		defer cancel()

		client := quotingv1.NewVendorBackendClient(conn)
		return client.GetQuote(callCtx, &quotingv1.QuoteRequest{
			ProductId:    req.GetProductId(),
			Quantity:     req.GetQuantity(),
			CurrencyCode: req.GetCurrencyCode(),
		})
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, status.Errorf(codes.Unavailable, "vendor %s circuit open", ep.DisplayName)
		}
		return nil, err
	}
	return result.(*quotingv1.PriceQuote), nil
}
