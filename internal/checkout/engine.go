// Package checkout implements the Checkout Engine: the fixed
// reserve -> {price, tax} -> pay -> confirm workflow with void/release
// compensations, an in-memory OrderStatus map with history replay plus
// live subscriber tail, and the in-memory InventoryLedger the workflow's
// reserve/release nodes mutate.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quoteforge/platform/internal/idgen"
	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
)

// orderStatus is the engine's live record for one checkout: its append-only
// status history and the set of subscribers currently tailing it. A single
// mutex guards the append-then-broadcast critical section so replay and
// live tail can never present a subscriber a gap or a duplicate.
type orderStatus struct {
	mu           sync.Mutex
	checkoutID   string
	overallState checkoutv1.NodeState
	history      []*checkoutv1.NodeStatus
	subscribers  []chan *checkoutv1.NodeStatus
	terminated   bool
}

func newOrderStatus(checkoutID string) *orderStatus {
	return &orderStatus{checkoutID: checkoutID, overallState: checkoutv1.NodeState_PENDING}
}

// append records ns in history and broadcasts it to every current
// subscriber, under the single per-order lock.
func (o *orderStatus) append(ns *checkoutv1.NodeStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.history = append(o.history, ns)
	for _, ch := range o.subscribers {
		select {
		case ch <- ns:
		default:
			// not reached in practice: each subscriber channel buffers
			// 32 events and one workflow emits at most 21 (seven nodes,
			// three states each). The non-blocking send only keeps a
			// stalled subscriber from holding the workflow under the lock.
		}
	}
}

// terminate marks the order finished and closes every subscriber channel,
// under the same lock append uses.
func (o *orderStatus) terminate(final checkoutv1.NodeState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.overallState = final
	o.terminated = true
	for _, ch := range o.subscribers {
		close(ch)
	}
	o.subscribers = nil
}

// subscribe atomically replays history and registers ch for future events.
// If the order is already terminated, it returns (history, nil) — nothing
// further will ever arrive.
func (o *orderStatus) subscribe() ([]*checkoutv1.NodeStatus, chan *checkoutv1.NodeStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()

	historyCopy := make([]*checkoutv1.NodeStatus, len(o.history))
	copy(historyCopy, o.history)

	if o.terminated {
		return historyCopy, nil
	}

	ch := make(chan *checkoutv1.NodeStatus, 32)
	o.subscribers = append(o.subscribers, ch)
	return historyCopy, ch
}

// Engine implements checkoutv1.CheckoutServer.
type Engine struct {
	checkoutv1.UnimplementedCheckoutServer

	log       zerolog.Logger
	inventory *InventoryLedger

	mu     sync.RWMutex
	orders map[string]*orderStatus

	terminatedCache *terminatedCache
	idempotency     *idempotencyCache
}

// New builds an Engine over the given inventory seed.
func New(inventorySeed map[string]int32, logger zerolog.Logger) *Engine {
	e := &Engine{
		log:             logger.With().Str("component", "checkout_engine").Logger(),
		inventory:       NewInventoryLedger(inventorySeed),
		orders:          make(map[string]*orderStatus),
		terminatedCache: newTerminatedCache(),
		idempotency:     newIdempotencyCache(),
	}
	e.terminatedCache.onEvicted(e.evictOrder)
	return e
}

func (e *Engine) evictOrder(checkoutID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.orders, checkoutID)
}

// Start allocates a checkout id, registers its OrderStatus, spawns the
// workflow asynchronously, and returns immediately with PENDING.
func (e *Engine) Start(ctx context.Context, req *checkoutv1.CheckoutRequest) (*checkoutv1.CheckoutResponse, error) {
	if req.GetIdempotencyKey() != "" {
		if existingID, ok := e.idempotency.lookup(req.GetIdempotencyKey()); ok {
			e.mu.RLock()
			existing, found := e.orders[existingID]
			e.mu.RUnlock()
			if found {
				existing.mu.Lock()
				state := existing.overallState
				existing.mu.Unlock()
				return &checkoutv1.CheckoutResponse{
					CheckoutId:   existingID,
					OverallState: state,
					Message:      "idempotent replay",
				}, nil
			}
		}
	}

	if len(req.GetItems()) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "items is required")
	}

	checkoutID := idgen.CheckoutID()
	order := newOrderStatus(checkoutID)

	e.mu.Lock()
	e.orders[checkoutID] = order
	e.mu.Unlock()

	if req.GetIdempotencyKey() != "" {
		e.idempotency.remember(req.GetIdempotencyKey(), checkoutID)
	}

	items := make([]CheckoutLineItem, 0, len(req.GetItems()))
	for _, item := range req.GetItems() {
		items = append(items, CheckoutLineItem{
			ProductID:  item.GetProductId(),
			Quantity:   item.GetQuantity(),
			UnitAmount: item.GetUnitPrice().GetAmountCents(),
			Currency:   item.GetUnitPrice().GetCurrencyCode(),
			VendorID:   item.GetVendorId(),
		})
	}

	go e.runWorkflow(checkoutID, order, items)

	return &checkoutv1.CheckoutResponse{
		CheckoutId:   checkoutID,
		OverallState: checkoutv1.NodeState_PENDING,
		Message:      "checkout started",
	}, nil
}

// GetStatus replays history then tails live NodeStatus events for
// checkoutID until the order terminates or the caller disconnects.
func (e *Engine) GetStatus(req *checkoutv1.GetStatusRequest, stream checkoutv1.Checkout_GetStatusServer) error {
	e.mu.RLock()
	order, found := e.orders[req.GetCheckoutId()]
	e.mu.RUnlock()
	if !found {
		return status.Errorf(codes.NotFound, "unknown checkout id %q", req.GetCheckoutId())
	}

	history, ch := order.subscribe()
	for _, ns := range history {
		if err := stream.Send(ns); err != nil {
			return err
		}
	}
	if ch == nil {
		return nil
	}

	for {
		select {
		case ns, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(ns); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
