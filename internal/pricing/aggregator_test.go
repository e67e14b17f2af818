package pricing

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/quoteforge/platform/internal/pricing/metrics"
	"github.com/quoteforge/platform/internal/pricing/pool"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
	"github.com/quoteforge/platform/internal/vendor"
	"github.com/quoteforge/platform/internal/vendorset"
)

// startVendor launches a real vendor simulator on an ephemeral port and
// returns its endpoint plus a stop func.
func startVendor(t *testing.T, name string) (vendorset.Endpoint, func()) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	quotingv1.RegisterVendorBackendServer(server, vendor.NewServer(name, zerolog.Nop()))

	go func() { _ = server.Serve(listener) }()

	host, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	return vendorset.Endpoint{Host: host, Port: port, DisplayName: name}, server.Stop
}

func newTestAggregator(endpoints []vendorset.Endpoint) (*Aggregator, func()) {
	cfg := pool.DefaultConfig()
	cfg.MinWorkers = 4
	cfg.MaxWorkers = 8
	latency := metrics.NewLatencyWindow(100)
	recent := metrics.NewRecentWindow(time.Minute, 100)
	p := pool.New(cfg, latency, zerolog.Nop())
	agg := New(endpoints, p, latency, recent, zerolog.Nop())
	return agg, p.Close
}

type fakeStream struct {
	grpc.ServerStream
	ctx     context.Context
	mu      chan struct{}
	quotes  []*quotingv1.PriceQuote
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{ctx: ctx, mu: make(chan struct{}, 1)}
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func (f *fakeStream) Send(q *quotingv1.PriceQuote) error {
	f.quotes = append(f.quotes, q)
	return nil
}

func TestStreamQuotesSingleVendor(t *testing.T) {
	ep, stop := startVendor(t, "Acme Supply")
	defer stop()

	agg, closePool := newTestAggregator([]vendorset.Endpoint{ep})
	defer closePool()

	stream := newFakeStream(context.Background())
	err := agg.StreamQuotes(&quotingv1.QuoteRequest{ProductId: "sku-laptop-1", Quantity: 1, CurrencyCode: "USD"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.quotes, 1)
	assert.Equal(t, "acmesupply", stream.quotes[0].GetVendorId())
	assert.Greater(t, stream.quotes[0].GetPrice().GetAmountCents(), int64(0))
}

func TestStreamQuotesEmptyVendorSetClosesCleanly(t *testing.T) {
	agg, closePool := newTestAggregator(nil)
	defer closePool()

	stream := newFakeStream(context.Background())
	err := agg.StreamQuotes(&quotingv1.QuoteRequest{ProductId: "sku-1", Quantity: 1, CurrencyCode: "USD"}, stream)
	require.NoError(t, err)
	assert.Empty(t, stream.quotes)
}

func TestStreamQuotesRejectsMissingProductID(t *testing.T) {
	agg, closePool := newTestAggregator(nil)
	defer closePool()

	stream := newFakeStream(context.Background())
	err := agg.StreamQuotes(&quotingv1.QuoteRequest{Quantity: 1}, stream)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "product_id"))
}

func TestStreamQuotesMultipleVendorsDistinctIDs(t *testing.T) {
	ep1, stop1 := startVendor(t, "Acme Supply")
	defer stop1()
	ep2, stop2 := startVendor(t, "Bolt Traders")
	defer stop2()

	agg, closePool := newTestAggregator([]vendorset.Endpoint{ep1, ep2})
	defer closePool()

	stream := newFakeStream(context.Background())
	err := agg.StreamQuotes(&quotingv1.QuoteRequest{ProductId: "sku-phone-1", Quantity: 1, CurrencyCode: "USD"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.quotes, 2)
	ids := map[string]bool{}
	for _, q := range stream.quotes {
		ids[q.GetVendorId()] = true
	}
	assert.Len(t, ids, 2)
}
