package domain

import "time"

type (
	// PlacedOrder is the outcome of a successful checkout, emitted to
	// the order events stream. Nothing durable is kept in-process.
	PlacedOrder struct {
		OrderID  string
		Items    []CartItem
		Shipping ShippingInfo
		Method   PaymentMethod
		Pricing  PriceBreakdown
		PlacedAt time.Time
	}

	OrderConfirmation struct {
		OrderID  string
		Pricing  PriceBreakdown
		PlacedAt time.Time
	}

	// Summary bundles the derived aggregates a storefront header and
	// order summary panel read together.
	Summary struct {
		CartCount     int
		CartTotal     float64
		WishlistCount int
		Pricing       PriceBreakdown
	}

	// CheckoutView is the read side of an in-flight checkout.
	CheckoutView struct {
		Stage   CheckoutStage
		Draft   CheckoutDraft
		Errors  FieldErrors
		Items   []CartItem
		Pricing PriceBreakdown
	}
)
