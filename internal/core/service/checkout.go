package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
	"github.com/crushcollection/storefront/pkg/retry"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrNoCheckout           = errors.New("no checkout in progress")
	ErrNotReviewStage       = errors.New("order can only be placed at review")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

var _ port.CheckoutSequencer = (*Checkout)(nil)

const DefaultPlacementDelay = time.Second

type checkoutState struct {
	stage  domain.CheckoutStage
	draft  domain.CheckoutDraft
	errors domain.FieldErrors
}

// Checkout is the linear shipping -> payment -> review sequencer.
// Drafts are per-session and transient: placing the order or
// abandoning the checkout discards them.
type Checkout struct {
	sessions port.SessionProvider
	events   port.OrderEventsProducer
	delay    time.Duration

	mu     sync.Mutex
	active map[string]*checkoutState
}

func NewCheckout(
	sessions port.SessionProvider,
	events port.OrderEventsProducer,
	placementDelay time.Duration,
) *Checkout {
	if placementDelay <= 0 {
		placementDelay = DefaultPlacementDelay
	}
	return &Checkout{
		sessions: sessions,
		events:   events,
		delay:    placementDelay,
		active:   make(map[string]*checkoutState),
	}
}

// StartCheckout refuses to initialize over an empty cart. Starting
// again while a checkout is in progress restarts it from shipping.
func (c *Checkout) StartCheckout(sessionID string) (domain.CheckoutView, error) {
	const op = "Checkout.StartCheckout"

	if len(c.cart(sessionID).Items()) == 0 {
		return domain.CheckoutView{}, opErr(op, ErrEmptyCart)
	}

	st := &checkoutState{
		stage: domain.StageShipping,
		draft: domain.CheckoutDraft{
			Payment: domain.PaymentInfo{Method: domain.PaymentCard},
		},
		errors: domain.FieldErrors{},
	}

	c.mu.Lock()
	c.active[sessionID] = st
	c.mu.Unlock()

	return c.view(sessionID, st), nil
}

func (c *Checkout) CheckoutState(sessionID string) (domain.CheckoutView, error) {
	const op = "Checkout.CheckoutState"

	st, ok := c.state(sessionID)
	if !ok {
		return domain.CheckoutView{}, opErr(op, ErrNoCheckout)
	}
	return c.view(sessionID, st), nil
}

func (c *Checkout) SetShipping(sessionID string, s domain.ShippingInfo) error {
	const op = "Checkout.SetShipping"

	st, ok := c.state(sessionID)
	if !ok {
		return opErr(op, ErrNoCheckout)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	st.draft.Shipping = s
	st.errors = domain.FieldErrors{}
	return nil
}

func (c *Checkout) SetPayment(sessionID string, p domain.PaymentInfo) error {
	const op = "Checkout.SetPayment"

	st, ok := c.state(sessionID)
	if !ok {
		return opErr(op, ErrNoCheckout)
	}
	if !p.Method.Valid() {
		return opErr(op, ErrInvalidPaymentMethod)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	st.draft.Payment = p
	st.errors = domain.FieldErrors{}
	return nil
}

// Next advances one stage when the current gate passes. A failing gate
// keeps the stage and surfaces field errors on the returned view.
func (c *Checkout) Next(sessionID string) (domain.CheckoutView, error) {
	const op = "Checkout.Next"

	st, ok := c.state(sessionID)
	if !ok {
		return domain.CheckoutView{}, opErr(op, ErrNoCheckout)
	}

	c.mu.Lock()
	switch st.stage {
	case domain.StageShipping:
		st.errors = domain.ValidateShipping(st.draft.Shipping)
		if st.errors.Valid() {
			st.stage = domain.StagePayment
		}
	case domain.StagePayment:
		st.errors = domain.ValidatePayment(st.draft.Payment)
		if st.errors.Valid() {
			st.stage = domain.StageReview
		}
	case domain.StageReview:
		// terminal, the only action left is PlaceOrder
	}
	c.mu.Unlock()

	return c.view(sessionID, st), nil
}

// Back steps to the immediately preceding stage. On shipping it is a
// no-op.
func (c *Checkout) Back(sessionID string) (domain.CheckoutView, error) {
	const op = "Checkout.Back"

	st, ok := c.state(sessionID)
	if !ok {
		return domain.CheckoutView{}, opErr(op, ErrNoCheckout)
	}

	c.mu.Lock()
	switch st.stage {
	case domain.StagePayment:
		st.stage = domain.StageShipping
	case domain.StageReview:
		st.stage = domain.StagePayment
	}
	st.errors = domain.FieldErrors{}
	c.mu.Unlock()

	return c.view(sessionID, st), nil
}

func (c *Checkout) Abandon(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, sessionID)
}

// PlaceOrder simulates order submission: a fixed delay, then success.
// The cart is cleared and the draft discarded. The order event is
// produced best effort, a broker outage never fails the confirmation.
func (c *Checkout) PlaceOrder(
	ctx context.Context, sessionID string,
) (domain.OrderConfirmation, error) {
	const op = "Checkout.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.OrderConfirmation{}, opErr(op, err)
	}

	st, ok := c.state(sessionID)
	if !ok {
		return domain.OrderConfirmation{}, opErr(op, ErrNoCheckout)
	}
	if st.stage != domain.StageReview {
		return domain.OrderConfirmation{}, opErr(op, ErrNotReviewStage)
	}

	cart := c.cart(sessionID)
	items := cart.Items()
	if len(items) == 0 {
		return domain.OrderConfirmation{}, opErr(op, ErrEmptyCart)
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return domain.OrderConfirmation{}, opErr(op, ctx.Err())
	case <-timer.C:
	}

	order := domain.PlacedOrder{
		OrderID:  uuid.NewString(),
		Items:    items,
		Shipping: st.draft.Shipping,
		Method:   st.draft.Payment.Method,
		Pricing:  domain.Breakdown(domain.Subtotal(items), st.draft.Payment.Method),
		PlacedAt: time.Now().UTC(),
	}

	c.produceEvent(ctx, order, log)

	cart.Clear()
	c.Abandon(sessionID)

	log.Info("order placed", "orderID", order.OrderID, "nLines", len(order.Items))

	return domain.OrderConfirmation{
		OrderID:  order.OrderID,
		Pricing:  order.Pricing,
		PlacedAt: order.PlacedAt,
	}, nil
}

func (c *Checkout) produceEvent(
	ctx context.Context, order domain.PlacedOrder, log *slog.Logger,
) {
	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(100 * time.Millisecond),
	}

	err := retry.Do(ctx, retryCfg, func() error {
		return c.events.ProduceOrderPlaced(ctx, order)
	})
	if err != nil {
		log.Error("failed to produce order event", "err", err)
	}
}

func (c *Checkout) state(sessionID string) (*checkoutState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.active[sessionID]
	return st, ok
}

func (c *Checkout) cart(sessionID string) port.CartStore {
	return c.sessions.Session(sessionID).Cart()
}

func (c *Checkout) view(sessionID string, st *checkoutState) domain.CheckoutView {
	items := c.cart(sessionID).Items()

	c.mu.Lock()
	defer c.mu.Unlock()

	errs := domain.FieldErrors{}
	for k, v := range st.errors {
		errs[k] = v
	}

	return domain.CheckoutView{
		Stage:   st.stage,
		Draft:   st.draft,
		Errors:  errs,
		Items:   items,
		Pricing: domain.Breakdown(domain.Subtotal(items), st.draft.Payment.Method),
	}
}

func opErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
