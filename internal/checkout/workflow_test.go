package checkout

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
)

func TestRunPayEventuallySucceedsOnFinalAttempt(t *testing.T) {
	engine := New(nil, zerolog.Nop())
	order := newOrderStatus("checkout-test-pay")
	exec := &execution{rng: rand.New(rand.NewSource(1)), currency: "USD"}

	done := make(chan struct{})
	go func() {
		_ = engine.runPay(order, exec)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("runPay did not return")
	}
	assert.NotEmpty(t, exec.paymentTxnID)
}

func TestSumSubtotal(t *testing.T) {
	items := []CheckoutLineItem{{UnitAmount: 1000, Quantity: 2}, {UnitAmount: 500, Quantity: 3}}
	assert.Equal(t, int64(3500), sumSubtotal(items))
}

func TestRunNodeEmitsLifecycle(t *testing.T) {
	engine := New(nil, zerolog.Nop())
	order := newOrderStatus("checkout-test-node")

	err := engine.runNode(order, checkoutv1.NodeId_PRICE, func() error { return nil })
	assert.NoError(t, err)

	order.mu.Lock()
	history := order.history
	order.mu.Unlock()

	assert.Len(t, history, 3)
	assert.Equal(t, checkoutv1.NodeState_PENDING, history[0].GetState())
	assert.Equal(t, checkoutv1.NodeState_RUNNING, history[1].GetState())
	assert.Equal(t, checkoutv1.NodeState_COMPLETED, history[2].GetState())
}
