package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
)

type recordingStream struct {
	checkoutv1.Checkout_GetStatusServer
	ctx context.Context
	out chan *checkoutv1.NodeStatus
}

func (s *recordingStream) Context() context.Context { return s.ctx }

func (s *recordingStream) Send(ns *checkoutv1.NodeStatus) error {
	s.out <- ns
	return nil
}

func collectUntilTerminal(t *testing.T, out chan *checkoutv1.NodeStatus, timeout time.Duration) []*checkoutv1.NodeStatus {
	t.Helper()
	var events []*checkoutv1.NodeStatus
	deadline := time.After(timeout)
	for {
		select {
		case ns := <-out:
			events = append(events, ns)
			if ns.GetNodeId() == checkoutv1.NodeId_CONFIRM || ns.GetNodeId() == checkoutv1.NodeId_RELEASE {
				if ns.GetState() == checkoutv1.NodeState_COMPLETED || ns.GetState() == checkoutv1.NodeState_FAILED {
					return events
				}
			}
			if ns.GetNodeId() == checkoutv1.NodeId_RESERVE && ns.GetState() == checkoutv1.NodeState_FAILED {
				return events
			}
		case <-deadline:
			return events
		}
	}
}

func startCheckout(t *testing.T, engine *Engine, req *checkoutv1.CheckoutRequest) (string, chan *checkoutv1.NodeStatus) {
	t.Helper()
	resp, err := engine.Start(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, checkoutv1.NodeState_PENDING, resp.GetOverallState())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	out := make(chan *checkoutv1.NodeStatus, 64)
	stream := &recordingStream{ctx: ctx, out: out}
	go func() { _ = engine.GetStatus(&checkoutv1.GetStatusRequest{CheckoutId: resp.GetCheckoutId()}, stream) }()

	return resp.GetCheckoutId(), out
}

func sampleItem(productID string, quantity int32) *checkoutv1.CheckoutItem {
	return &checkoutv1.CheckoutItem{
		ProductId: productID,
		Quantity:  quantity,
		UnitPrice: &quotingv1.Money{CurrencyCode: "USD", AmountCents: 1000},
		VendorId:  "v1",
	}
}

func TestHappyCheckoutCompletes(t *testing.T) {
	engine := New(map[string]int32{"sku-1": 10}, zerolog.Nop())
	req := &checkoutv1.CheckoutRequest{
		CustomerId:      "c1",
		Items:           []*checkoutv1.CheckoutItem{sampleItem("sku-1", 1)},
		ShippingAddress: "addr",
		PaymentMethodId: "pm-1",
	}
	_, out := startCheckout(t, engine, req)
	events := collectUntilTerminal(t, out, 5*time.Second)

	var sawReserve, sawPrice, sawTax, sawPay, sawConfirm, sawVoid, sawRelease bool
	for _, e := range events {
		switch e.GetNodeId() {
		case checkoutv1.NodeId_RESERVE:
			sawReserve = true
		case checkoutv1.NodeId_PRICE:
			sawPrice = true
		case checkoutv1.NodeId_TAX:
			sawTax = true
		case checkoutv1.NodeId_PAY:
			sawPay = true
		case checkoutv1.NodeId_CONFIRM:
			sawConfirm = true
		case checkoutv1.NodeId_VOID:
			sawVoid = true
		case checkoutv1.NodeId_RELEASE:
			sawRelease = true
		}
	}
	assert.True(t, sawReserve)
	assert.True(t, sawPrice)
	assert.True(t, sawTax)
	assert.True(t, sawPay)
	assert.True(t, sawConfirm)
	assert.False(t, sawVoid)
	assert.False(t, sawRelease)

	last := events[len(events)-1]
	assert.Equal(t, checkoutv1.NodeId_CONFIRM, last.GetNodeId())
	assert.Equal(t, checkoutv1.NodeState_COMPLETED, last.GetState())
}

func TestInsufficientInventoryFailsFast(t *testing.T) {
	engine := New(map[string]int32{"sku-1": 0}, zerolog.Nop())
	req := &checkoutv1.CheckoutRequest{
		CustomerId:      "c1",
		Items:           []*checkoutv1.CheckoutItem{sampleItem("sku-1", 1)},
		ShippingAddress: "addr",
		PaymentMethodId: "pm-1",
	}
	_, out := startCheckout(t, engine, req)
	events := collectUntilTerminal(t, out, 5*time.Second)

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, checkoutv1.NodeId_RESERVE, last.GetNodeId())
	assert.Equal(t, checkoutv1.NodeState_FAILED, last.GetState())
	assert.Equal(t, "INSUFFICIENT_INVENTORY", last.GetErrorCode())
}

func TestGetStatusUnknownCheckoutIDFails(t *testing.T) {
	engine := New(nil, zerolog.Nop())
	out := make(chan *checkoutv1.NodeStatus, 1)
	stream := &recordingStream{ctx: context.Background(), out: out}
	err := engine.GetStatus(&checkoutv1.GetStatusRequest{CheckoutId: "nonexistent"}, stream)
	assert.Error(t, err)
}

func TestIdempotencyKeyReplaysSameCheckout(t *testing.T) {
	engine := New(map[string]int32{"sku-1": 10}, zerolog.Nop())
	req := &checkoutv1.CheckoutRequest{
		CustomerId:      "c1",
		Items:           []*checkoutv1.CheckoutItem{sampleItem("sku-1", 1)},
		ShippingAddress: "addr",
		PaymentMethodId: "pm-1",
		IdempotencyKey:  "idem-1",
	}
	first, err := engine.Start(context.Background(), req)
	require.NoError(t, err)

	second, err := engine.Start(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.GetCheckoutId(), second.GetCheckoutId())
}
