package edge

import (
	"context"
	"net/http"
	"time"

	"google.golang.org/grpc/metadata"

	"github.com/quoteforge/platform/internal/idgen"
	"github.com/quoteforge/platform/internal/money"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
)

const searchUpstreamDeadline = 1500 * time.Millisecond

// quoteEvent is the camelCase SSE payload shape for one search result.
type quoteEvent struct {
	Vendor        string  `json:"vendor"`
	VendorID      string  `json:"vendorId"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	EstimatedDays int32   `json:"estimatedDays"`
	Timestamp     int64   `json:"timestamp"`
}

// handleSearch implements GET /api/search?q=... : map the free-text query
// to a product id, stream quotes from the Pricing Aggregator, and re-emit
// each one as an SSE "quote" event.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, `{"error":"q is required"}`, http.StatusBadRequest)
		return
	}
	productID := idgen.ProductIDFromQuery(q)

	ctx, cancel := context.WithTimeout(r.Context(), searchUpstreamDeadline)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, requestIDMetadataKey, requestIDFrom(r.Context()))

	stream, err := s.pricing.StreamQuotes(ctx, &quotingv1.QuoteRequest{
		ProductId:    productID,
		Quantity:     1,
		CurrencyCode: "USD",
	})
	if err != nil {
		http.Error(w, `{"error":"upstream unavailable"}`, http.StatusInternalServerError)
		return
	}

	sw := newSSEWriter(w)
	done := make(chan struct{})
	errs := make(chan error, 1)
	go runHeartbeat(sw, done, errs)
	defer close(done)

	for {
		quote, err := stream.Recv()
		if err != nil {
			return
		}
		m := money.FromProto(quote.GetPrice())
		event := quoteEvent{
			Vendor:        quote.GetVendorName(),
			VendorID:      quote.GetVendorId(),
			Price:         m.Dollars(),
			Currency:      m.CurrencyCode,
			EstimatedDays: quote.GetEstimatedDays(),
			Timestamp:     quote.GetTimestampMs(),
		}
		if sendErr := sw.sendEvent("quote", event); sendErr != nil {
			return
		}
		select {
		case <-errs:
			return
		default:
		}
	}
}
