package checkout

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quoteforge/platform/internal/money"
	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
)

const priceTaxAggregateDeadline = 3 * time.Second

// nodeFailure carries the error_code/error_message pair a failed node
// reports on its terminal FAILED status.
type nodeFailure struct {
	code    string
	message string
}

func (f *nodeFailure) Error() string { return f.message }

// execution is the mutable state threaded through one checkout's workflow
// run: the items it priced, the subtotal/tax it computed, and the payment
// transaction id once pay succeeds.
type execution struct {
	checkoutID string
	items      []CheckoutLineItem
	rng        *rand.Rand

	subtotalCents int64
	taxCents      int64
	currency      string
	paymentTxnID  string
}

// runWorkflow executes the fixed reserve -> {price, tax} -> pay -> confirm
// DAG for one checkout, emitting NodeStatus lifecycle events and running
// compensations on failure, then terminates the order.
func (e *Engine) runWorkflow(checkoutID string, order *orderStatus, items []CheckoutLineItem) {
	exec := &execution{
		checkoutID: checkoutID,
		items:      items,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		currency:   "USD",
	}
	if len(items) > 0 {
		exec.currency = items[0].Currency
	}

	if err := e.runNode(order, checkoutv1.NodeId_RESERVE, func() error {
		if err := e.inventory.ReserveAll(items); err != nil {
			return &nodeFailure{code: "INSUFFICIENT_INVENTORY", message: err.Error()}
		}
		return nil
	}); err != nil {
		e.finishFailed(order)
		return
	}

	exec.subtotalCents = sumSubtotal(items)

	if err := e.runPriceAndTax(order, exec); err != nil {
		e.runReleaseCompensation(order, items)
		e.finishFailed(order)
		return
	}

	if err := e.runPay(order, exec); err != nil {
		e.runVoidCompensation(order, exec)
		e.runReleaseCompensation(order, items)
		e.finishFailed(order)
		return
	}

	if err := e.runNode(order, checkoutv1.NodeId_CONFIRM, func() error {
		time.Sleep(randDuration(exec.rng, 50, 150))
		if exec.rng.Float64() < 0.05 {
			return &nodeFailure{code: "CONFIRMATION_FAILED", message: "confirmation failed"}
		}
		return nil
	}); err != nil {
		e.runVoidCompensation(order, exec)
		e.runReleaseCompensation(order, items)
		e.finishFailed(order)
		return
	}

	total := money.New(exec.currency, exec.subtotalCents+exec.taxCents)
	e.finishCompleted(order, total)
}

// runPriceAndTax runs the price and tax nodes concurrently and joins them
// under an aggregate 3s deadline. Both nodes derive their work from the
// subtotal runWorkflow computes right after reserve, rather than racing each
// other for it: "price" confirms/simulates against the known subtotal,
// "tax" computes the tax amount from it. This keeps the two nodes
// independent tasks (as the spec's concurrency requirement calls for)
// without one waiting on a value only the other produces.
func (e *Engine) runPriceAndTax(order *orderStatus, exec *execution) error {
	ctx, cancel := context.WithTimeout(context.Background(), priceTaxAggregateDeadline)
	defer cancel()

	var wg sync.WaitGroup
	var priceErr, taxErr error
	wg.Add(2)

	go func() {
		defer wg.Done()
		priceErr = e.runNode(order, checkoutv1.NodeId_PRICE, func() error {
			time.Sleep(randDuration(exec.rng, 50, 150))
			return nil
		})
	}()

	go func() {
		defer wg.Done()
		taxErr = e.runNode(order, checkoutv1.NodeId_TAX, func() error {
			time.Sleep(randDuration(exec.rng, 30, 100))
			exec.taxCents = money.New(exec.currency, exec.subtotalCents).TaxFloor(0.08).AmountCents
			return nil
		})
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if priceErr != nil {
		return priceErr
	}
	return taxErr
}

const payMaxAttempts = 3

// runPay attempts payment up to payMaxAttempts times. Only attempts before
// the final one are subject to the ~20% synthetic failure; the final
// attempt always succeeds (absent a real deadline breach), guaranteeing
// the workflow makes progress rather than retrying forever.
func (e *Engine) runPay(order *orderStatus, exec *execution) error {
	return e.runNode(order, checkoutv1.NodeId_PAY, func() error {
		for attempt := 1; attempt <= payMaxAttempts; attempt++ {
			final := attempt == payMaxAttempts

			attemptCtx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
			result := make(chan error, 1)
			go func() {
				time.Sleep(randDuration(exec.rng, 100, 300))
				if !final && exec.rng.Float64() < 0.20 {
					result <- &nodeFailure{code: "PAYMENT_FAILED", message: "synthetic payment decline"}
					return
				}
				result <- nil
			}()

			var attemptErr error
			select {
			case attemptErr = <-result:
			case <-attemptCtx.Done():
				attemptErr = attemptCtx.Err()
			}
			cancel()

			if attemptErr == nil {
				exec.paymentTxnID = "txn-" + uuid.New().String()
				return nil
			}
			if !final {
				time.Sleep(200 * time.Millisecond)
			} else {
				return &nodeFailure{code: "PAYMENT_FAILED", message: "payment failed after all attempts"}
			}
		}
		return &nodeFailure{code: "PAYMENT_FAILED", message: "payment failed after all attempts"}
	})
}

// runVoidCompensation voids the payment transaction if one was opened.
// Only runs pay/confirm failures; reserve/price/tax failures never set a
// transaction id so this is a no-op for them.
func (e *Engine) runVoidCompensation(order *orderStatus, exec *execution) {
	if exec.paymentTxnID == "" {
		return
	}
	_ = e.runNode(order, checkoutv1.NodeId_VOID, func() error {
		time.Sleep(randDuration(exec.rng, 40, 60))
		return nil
	})
}

// runReleaseCompensation adds every item's quantity back to the ledger and
// emits the corresponding node lifecycle around that same mutation. Errors
// are not possible here (ReleaseAll cannot fail), and the result is not
// re-triggered as further compensation even in principle: compensation
// failures do not recurse.
func (e *Engine) runReleaseCompensation(order *orderStatus, items []CheckoutLineItem) {
	_ = e.runNode(order, checkoutv1.NodeId_RELEASE, func() error {
		e.inventory.ReleaseAll(items)
		return nil
	})
}

// runNode emits PENDING then RUNNING, runs fn, then emits COMPLETED or
// FAILED depending on its result.
func (e *Engine) runNode(order *orderStatus, id checkoutv1.NodeId, fn func() error) error {
	e.emit(order, id, checkoutv1.NodeState_PENDING, "", "", "")
	e.emit(order, id, checkoutv1.NodeState_RUNNING, "", "", "")

	err := fn()
	if err != nil {
		code, msg := "", err.Error()
		if nf, ok := err.(*nodeFailure); ok {
			code = nf.code
			msg = nf.message
		}
		e.emit(order, id, checkoutv1.NodeState_FAILED, msg, code, msg)
		return err
	}

	e.emit(order, id, checkoutv1.NodeState_COMPLETED, "", "", "")
	return nil
}

func (e *Engine) emit(order *orderStatus, id checkoutv1.NodeId, state checkoutv1.NodeState, message, errorCode, errorMessage string) {
	order.append(&checkoutv1.NodeStatus{
		NodeId:       id,
		State:        state,
		Message:      message,
		TimestampMs:  nowMs(),
		ErrorCode:    errorCode,
		ErrorMessage: errorMessage,
	})
}

func (e *Engine) finishFailed(order *orderStatus) {
	order.terminate(checkoutv1.NodeState_FAILED)
	e.terminatedCache.markTerminated(order.checkoutID)
}

func (e *Engine) finishCompleted(order *orderStatus, total money.Money) {
	e.log.Info().Str("checkout_id", order.checkoutID).Int64("total_cents", total.AmountCents).Msg("checkout completed")
	order.terminate(checkoutv1.NodeState_COMPLETED)
	e.terminatedCache.markTerminated(order.checkoutID)
}

func sumSubtotal(items []CheckoutLineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitAmount * int64(item.Quantity)
	}
	return total
}

func randDuration(rng *rand.Rand, lowMs, highMs int) time.Duration {
	span := highMs - lowMs
	if span <= 0 {
		return time.Duration(lowMs) * time.Millisecond
	}
	return time.Duration(lowMs+rng.Intn(span)) * time.Millisecond
}
