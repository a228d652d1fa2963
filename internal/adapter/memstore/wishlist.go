package memstore

import (
	"sync"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

var _ port.WishlistStore = (*WishlistStore)(nil)

// WishlistStore holds the saved products of one session, unique by
// product id, in insertion order.
type WishlistStore struct {
	mu       sync.Mutex
	products []domain.Product
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

// Toggle adds the product if absent and removes it if present.
// It reports whether the product is in the wishlist afterwards.
func (s *WishlistStore) Toggle(p domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ProductID == p.ProductID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return false
		}
	}
	s.products = append(s.products, p)
	return true
}

func (s *WishlistStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ProductID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
}

func (s *WishlistStore) Has(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}
