package edge

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
	"github.com/quoteforge/platform/internal/vendor"
)

// fakeCheckoutServer is a minimal in-test double for the Checkout Engine,
// independent of its real implementation, used only to exercise the Edge
// Bridge's HTTP translation layer.
type fakeCheckoutServer struct {
	checkoutv1.UnimplementedCheckoutServer
}

func (f *fakeCheckoutServer) Start(ctx context.Context, req *checkoutv1.CheckoutRequest) (*checkoutv1.CheckoutResponse, error) {
	return &checkoutv1.CheckoutResponse{
		CheckoutId:   "checkout-1-1",
		OverallState: checkoutv1.NodeState_PENDING,
		Message:      "accepted",
	}, nil
}

func (f *fakeCheckoutServer) GetStatus(req *checkoutv1.GetStatusRequest, stream checkoutv1.Checkout_GetStatusServer) error {
	return stream.Send(&checkoutv1.NodeStatus{
		NodeId:      checkoutv1.NodeId_RESERVE,
		State:       checkoutv1.NodeState_COMPLETED,
		Message:     "reserved",
		TimestampMs: time.Now().UnixMilli(),
	})
}

func startGRPC(t *testing.T, register func(*grpc.Server)) *grpc.ClientConn {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	register(server)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	return conn
}

func newTestServer(t *testing.T) *Server {
	pricingConn := startGRPC(t, func(s *grpc.Server) {
		quotingv1.RegisterVendorPricingServer(s, &fakePricingServer{})
	})
	checkoutConn := startGRPC(t, func(s *grpc.Server) {
		checkoutv1.RegisterCheckoutServer(s, &fakeCheckoutServer{})
	})
	return New(pricingConn, checkoutConn, Config{RateLimitQPS: 1000, RateLimitEnabled: false}, zerolog.Nop())
}

type fakePricingServer struct {
	quotingv1.UnimplementedVendorPricingServer
}

func (f *fakePricingServer) StreamQuotes(req *quotingv1.QuoteRequest, stream quotingv1.VendorPricing_StreamQuotesServer) error {
	v := vendor.NewServer("Acme Supply", zerolog.Nop())
	quote, err := v.GetQuote(stream.Context(), req)
	if err != nil {
		return nil
	}
	return stream.Send(quote)
}

func TestHandleSearchEmitsQuoteEvent(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=laptop", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "event: quote")
	assert.Contains(t, body, "\"vendorId\":\"acmesupply\"")
}

func TestHandleQuoteBestMode(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/quote?productId=sku-laptop-1&mode=best", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out quoteJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "acmesupply", out.VendorID)
	assert.Greater(t, out.Price, 0.0)
}

func TestHandleQuoteMissingProductID(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCheckoutStart(t *testing.T) {
	server := newTestServer(t)
	body := strings.NewReader(`{
		"customerId":"c1",
		"items":[{"productId":"sku-1","quantity":1,"unitPrice":{"currencyCode":"USD","amountCents":1000},"vendorId":"v1"}],
		"shippingAddress":"123 Main St",
		"paymentMethodId":"pm-card-123"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", body)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out checkoutStartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "checkout-1-1", out.CheckoutID)
}

func TestRequestIDEchoedBack(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "test-id-123")
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "test-id-123", rec.Header().Get(requestIDHeader))
}

func TestRateLimitRejectsWhenEnabled(t *testing.T) {
	pricingConn := startGRPC(t, func(s *grpc.Server) {
		quotingv1.RegisterVendorPricingServer(s, &fakePricingServer{})
	})
	checkoutConn := startGRPC(t, func(s *grpc.Server) {
		checkoutv1.RegisterCheckoutServer(s, &fakeCheckoutServer{})
	})
	server := New(pricingConn, checkoutConn, Config{RateLimitQPS: 1, RateLimitEnabled: true}, zerolog.Nop())

	handler := server.Handler()
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			return
		}
	}
	t.Fatal("expected at least one request to be rate limited")
}
