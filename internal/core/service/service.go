package service

import (
	"errors"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

var _ port.ProductsReader = (*Storefront)(nil)
var _ port.FilterMutator = (*Storefront)(nil)
var _ port.CartMutator = (*Storefront)(nil)
var _ port.WishlistMutator = (*Storefront)(nil)
var _ port.SummaryReader = (*Storefront)(nil)

// Storefront orchestrates the per-session stores over the read-only
// catalog. Every derived value is recomputed from store state on read.
type Storefront struct {
	catalog  port.CatalogProvider
	sessions port.SessionProvider
}

func NewStorefront(
	catalog port.CatalogProvider, sessions port.SessionProvider,
) Storefront {
	return Storefront{catalog, sessions}
}

// ListProducts returns the filtered, sorted product view for the
// session. A non-empty seedCategory comes from the navigation context
// and reseeds the filter store before the view is computed; the store
// owns the category afterwards.
func (s Storefront) ListProducts(
	sessionID string, seedCategory domain.Category,
) []domain.Product {
	filter := s.sessions.Session(sessionID).Filter()

	if seedCategory != "" && seedCategory != filter.Criteria().Category {
		filter.SetCategory(seedCategory)
	}

	criteria := filter.Criteria()
	return domain.SortProducts(
		domain.FilterProducts(s.catalog.All(), criteria), criteria.SortBy,
	)
}

func (s Storefront) GetProduct(productID string) (domain.Product, bool) {
	return s.catalog.Get(productID)
}

func (s Storefront) FeaturedProducts() []domain.Product {
	return s.catalog.Featured()
}

func (s Storefront) SetFilterCategory(sessionID string, c domain.Category) {
	s.sessions.Session(sessionID).Filter().SetCategory(c)
}

func (s Storefront) SetFilterPriceRange(sessionID string, r domain.PriceRange) {
	s.sessions.Session(sessionID).Filter().SetPriceRange(r)
}

func (s Storefront) ToggleFilterSize(sessionID, size string) {
	s.sessions.Session(sessionID).Filter().ToggleSize(size)
}

func (s Storefront) ToggleFilterColor(sessionID, color string) {
	s.sessions.Session(sessionID).Filter().ToggleColor(color)
}

func (s Storefront) SetFilterSortBy(sessionID string, by domain.SortBy) {
	s.sessions.Session(sessionID).Filter().SetSortBy(by)
}

func (s Storefront) SetFilterQuery(sessionID, q string) {
	s.sessions.Session(sessionID).Filter().SetQuery(q)
}

func (s Storefront) ResetFilters(sessionID string, preserveCategory bool) {
	s.sessions.Session(sessionID).Filter().Reset(preserveCategory)
}

func (s Storefront) FilterCriteria(sessionID string) domain.FilterCriteria {
	return s.sessions.Session(sessionID).Filter().Criteria()
}

// AddToCart resolves the product against the catalog and delegates to
// the session cart. Unknown products are an input error; a size or
// color the product does not offer is silently ignored by the store.
func (s Storefront) AddToCart(
	sessionID, productID, size, color string, qty int,
) error {
	const op = "Storefront.AddToCart"

	p, ok := s.catalog.Get(productID)
	if !ok {
		return opErr(op, ErrProductNotFound)
	}

	s.sessions.Session(sessionID).Cart().AddItem(p, size, color, qty)
	return nil
}

func (s Storefront) SetCartQuantity(
	sessionID string, key domain.LineKey, qty int,
) {
	s.sessions.Session(sessionID).Cart().SetQuantity(key, qty)
}

func (s Storefront) RemoveCartItem(sessionID string, key domain.LineKey) {
	s.sessions.Session(sessionID).Cart().RemoveItem(key)
}

func (s Storefront) ClearCart(sessionID string) {
	s.sessions.Session(sessionID).Cart().Clear()
}

func (s Storefront) CartItems(sessionID string) []domain.CartItem {
	return s.sessions.Session(sessionID).Cart().Items()
}

func (s Storefront) ToggleWishlist(
	sessionID, productID string,
) (bool, error) {
	const op = "Storefront.ToggleWishlist"

	p, ok := s.catalog.Get(productID)
	if !ok {
		return false, opErr(op, ErrProductNotFound)
	}
	return s.sessions.Session(sessionID).Wishlist().Toggle(p), nil
}

func (s Storefront) RemoveFromWishlist(sessionID, productID string) {
	s.sessions.Session(sessionID).Wishlist().Remove(productID)
}

func (s Storefront) ClearWishlist(sessionID string) {
	s.sessions.Session(sessionID).Wishlist().Clear()
}

func (s Storefront) WishlistProducts(sessionID string) []domain.Product {
	return s.sessions.Session(sessionID).Wishlist().Products()
}

// MoveToCart adds one unit of the product with its first available
// size and color, then removes it from the wishlist. The cart add is
// complete before the wishlist removal is observable.
func (s Storefront) MoveToCart(sessionID, productID string) error {
	const op = "Storefront.MoveToCart"

	p, ok := s.catalog.Get(productID)
	if !ok {
		return opErr(op, ErrProductNotFound)
	}

	session := s.sessions.Session(sessionID)
	session.Cart().AddItem(p, p.Sizes[0], p.Colors[0], 1)
	session.Wishlist().Remove(productID)
	return nil
}

// Summary recomputes the header and order-summary aggregates.
func (s Storefront) Summary(
	sessionID string, method domain.PaymentMethod,
) domain.Summary {
	session := s.sessions.Session(sessionID)
	items := session.Cart().Items()
	subtotal := domain.Subtotal(items)

	return domain.Summary{
		CartCount:     domain.UnitCount(items),
		CartTotal:     subtotal,
		WishlistCount: len(session.Wishlist().Products()),
		Pricing:       domain.Breakdown(subtotal, method),
	}
}
