package port

import (
	"context"

	"github.com/crushcollection/storefront/internal/core/domain"
)

// Outbound ports.

type CatalogProvider interface {
	All() []domain.Product
	Get(productID string) (domain.Product, bool)
	Featured() []domain.Product
}

type CartStore interface {
	AddItem(p domain.Product, size, color string, qty int)
	SetQuantity(key domain.LineKey, qty int)
	RemoveItem(key domain.LineKey)
	Clear()
	Items() []domain.CartItem
}

type WishlistStore interface {
	Toggle(p domain.Product) (added bool)
	Remove(productID string)
	Clear()
	Has(productID string) bool
	Products() []domain.Product
}

type FilterStore interface {
	SetCategory(c domain.Category)
	SetPriceRange(r domain.PriceRange)
	ToggleSize(size string)
	ToggleColor(color string)
	SetSortBy(s domain.SortBy)
	SetQuery(q string)
	Reset(preserveCategory bool)
	Criteria() domain.FilterCriteria
}

// Session bundles the per-visitor stores. Implementations serialize
// mutations within one session.
type Session interface {
	Cart() CartStore
	Wishlist() WishlistStore
	Filter() FilterStore
}

type SessionProvider interface {
	Session(sessionID string) Session
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(context.Context, domain.PlacedOrder) error
}

// SalesReader serves the display-only units-sold hint. It never gates
// cart mutations.
type SalesReader interface {
	UnitsSold(productID string) (int64, error)
}

// Inbound ports.

type ProductsReader interface {
	ListProducts(sessionID string, seedCategory domain.Category) []domain.Product
	GetProduct(productID string) (domain.Product, bool)
	FeaturedProducts() []domain.Product
}

type FilterMutator interface {
	SetFilterCategory(sessionID string, c domain.Category)
	SetFilterPriceRange(sessionID string, r domain.PriceRange)
	ToggleFilterSize(sessionID, size string)
	ToggleFilterColor(sessionID, color string)
	SetFilterSortBy(sessionID string, s domain.SortBy)
	SetFilterQuery(sessionID, q string)
	ResetFilters(sessionID string, preserveCategory bool)
	FilterCriteria(sessionID string) domain.FilterCriteria
}

type CartMutator interface {
	AddToCart(sessionID, productID, size, color string, qty int) error
	SetCartQuantity(sessionID string, key domain.LineKey, qty int)
	RemoveCartItem(sessionID string, key domain.LineKey)
	ClearCart(sessionID string)
	CartItems(sessionID string) []domain.CartItem
}

type WishlistMutator interface {
	ToggleWishlist(sessionID, productID string) (added bool, err error)
	RemoveFromWishlist(sessionID, productID string)
	ClearWishlist(sessionID string)
	WishlistProducts(sessionID string) []domain.Product
	MoveToCart(sessionID, productID string) error
}

type SummaryReader interface {
	Summary(sessionID string, method domain.PaymentMethod) domain.Summary
}

type CheckoutSequencer interface {
	StartCheckout(sessionID string) (domain.CheckoutView, error)
	CheckoutState(sessionID string) (domain.CheckoutView, error)
	SetShipping(sessionID string, s domain.ShippingInfo) error
	SetPayment(sessionID string, p domain.PaymentInfo) error
	Next(sessionID string) (domain.CheckoutView, error)
	Back(sessionID string) (domain.CheckoutView, error)
	Abandon(sessionID string)
	PlaceOrder(ctx context.Context, sessionID string) (domain.OrderConfirmation, error)
}
