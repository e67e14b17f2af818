package edge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"google.golang.org/grpc/metadata"

	"github.com/quoteforge/platform/internal/money"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
)

const (
	quoteUpstreamDeadline = 1500 * time.Millisecond
	quoteWallBudget       = 3 * time.Second
)

// quoteJSON is the JSON shape of one quote in /api/quote responses.
type quoteJSON struct {
	VendorID      string  `json:"vendorId"`
	Vendor        string  `json:"vendor"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	EstimatedDays int32   `json:"estimatedDays"`
}

// handleQuote implements GET /api/quote?productId=...&mode=best|all.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	if productID == "" {
		http.Error(w, `{"error":"productId is required"}`, http.StatusBadRequest)
		return
	}
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "best"
	}

	wallCtx, wallCancel := context.WithTimeout(r.Context(), quoteWallBudget)
	defer wallCancel()

	upstreamCtx, upstreamCancel := context.WithTimeout(wallCtx, quoteUpstreamDeadline)
	defer upstreamCancel()
	upstreamCtx = metadata.AppendToOutgoingContext(upstreamCtx, requestIDMetadataKey, requestIDFrom(r.Context()))

	stream, err := s.pricing.StreamQuotes(upstreamCtx, &quotingv1.QuoteRequest{
		ProductId:    productID,
		Quantity:     1,
		CurrencyCode: "USD",
	})
	if err != nil {
		http.Error(w, `{"error":"upstream unavailable"}`, http.StatusInternalServerError)
		return
	}

	var quotes []*quotingv1.PriceQuote
	for {
		q, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		quotes = append(quotes, q)

		select {
		case <-wallCtx.Done():
			goto collected
		default:
		}
	}
collected:

	w.Header().Set("Content-Type", "application/json")

	if mode == "all" {
		out := make([]quoteJSON, 0, len(quotes))
		for _, q := range quotes {
			out = append(out, toQuoteJSON(q))
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"productId":  productID,
			"quoteCount": len(out),
			"quotes":     out,
		})
		return
	}

	if len(quotes) == 0 {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no quotes received"})
		return
	}

	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.GetPrice().GetAmountCents() < best.GetPrice().GetAmountCents() {
			best = q
		}
	}
	_ = json.NewEncoder(w).Encode(toQuoteJSON(best))
}

func toQuoteJSON(q *quotingv1.PriceQuote) quoteJSON {
	m := money.FromProto(q.GetPrice())
	return quoteJSON{
		VendorID:      q.GetVendorId(),
		Vendor:        q.GetVendorName(),
		Price:         m.Dollars(),
		Currency:      m.CurrencyCode,
		EstimatedDays: q.GetEstimatedDays(),
	}
}
