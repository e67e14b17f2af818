package edge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/metadata"

	"github.com/quoteforge/platform/internal/money"
	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
)

const (
	checkoutStartDeadline  = 2 * time.Second
	checkoutStreamDeadline = 120 * time.Second
)

// checkoutStartResponse is the JSON shape POST /api/checkout returns.
type checkoutStartResponse struct {
	CheckoutID  string   `json:"checkoutId"`
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
}

// statusEvent is the JSON payload shape for checkout status SSE events.
type statusEvent struct {
	NodeID       string  `json:"nodeId"`
	State        string  `json:"state"`
	Message      string  `json:"message"`
	Timestamp    int64   `json:"timestamp"`
	ErrorCode    *string `json:"errorCode,omitempty"`
	ErrorMessage *string `json:"errorMessage,omitempty"`
}

// handleCheckoutStart implements POST /api/checkout.
func (s *Server) handleCheckoutStart(w http.ResponseWriter, r *http.Request) {
	var payload checkoutRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"malformed json body"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	items := make([]*checkoutv1.CheckoutItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, &checkoutv1.CheckoutItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: money.New(item.UnitPrice.CurrencyCode, item.UnitPrice.AmountCents).Proto(),
			VendorId:  item.VendorID,
		})
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	ctx, cancel := context.WithTimeout(r.Context(), checkoutStartDeadline)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, requestIDMetadataKey, requestIDFrom(r.Context()))
	if idempotencyKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "idempotency-key", idempotencyKey)
	}

	resp, err := s.checkout.Start(ctx, &checkoutv1.CheckoutRequest{
		CustomerId:      payload.CustomerID,
		Items:           items,
		ShippingAddress: payload.ShippingAddress,
		PaymentMethodId: payload.PaymentMethodID,
		IdempotencyKey:  idempotencyKey,
	})
	if err != nil {
		http.Error(w, `{"error":"upstream unavailable"}`, http.StatusInternalServerError)
		return
	}

	out := checkoutStartResponse{
		CheckoutID: resp.GetCheckoutId(),
		Status:     resp.GetOverallState().String(),
		Message:    resp.GetMessage(),
	}
	if resp.GetTotalAmount() != nil {
		dollars := money.FromProto(resp.GetTotalAmount()).Dollars()
		currency := resp.GetTotalAmount().GetCurrencyCode()
		out.TotalAmount = &dollars
		out.Currency = &currency
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// handleCheckoutStream implements GET /api/checkout/{id}/stream.
func (s *Server) handleCheckoutStream(w http.ResponseWriter, r *http.Request) {
	checkoutID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), checkoutStreamDeadline)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, requestIDMetadataKey, requestIDFrom(r.Context()))

	stream, err := s.checkout.GetStatus(ctx, &checkoutv1.GetStatusRequest{CheckoutId: checkoutID})
	if err != nil {
		// unknown id: stream closes on the HTTP side too.
		return
	}

	sw := newSSEWriter(w)
	done := make(chan struct{})
	errs := make(chan error, 1)
	go runHeartbeat(sw, done, errs)
	defer close(done)

	for {
		ns, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}

		event := statusEvent{
			NodeID:    ns.GetNodeId().String(),
			State:     ns.GetState().String(),
			Message:   ns.GetMessage(),
			Timestamp: ns.GetTimestampMs(),
		}
		if ns.GetErrorCode() != "" {
			code := ns.GetErrorCode()
			event.ErrorCode = &code
		}
		if ns.GetErrorMessage() != "" {
			msg := ns.GetErrorMessage()
			event.ErrorMessage = &msg
		}

		if sendErr := sw.sendEvent("status", event); sendErr != nil {
			return
		}

		select {
		case <-errs:
			return
		default:
		}
	}
}
