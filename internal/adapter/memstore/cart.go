package memstore

import (
	"sync"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

var _ port.CartStore = (*CartStore)(nil)

// CartStore holds the cart lines of one session. Mutations on one
// logical cart are serialized by the mutex: multiple tabs or devices
// may race on the same session.
type CartStore struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem merges qty into the line matching the identity triple, or
// appends a new line. Selections the product does not offer are
// silently rejected.
func (s *CartStore) AddItem(p domain.Product, size, color string, qty int) {
	if qty < 1 || !p.HasSize(size) || !p.HasColor(color) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{ProductID: p.ProductID, Size: size, Color: color}
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity += qty
			return
		}
	}

	s.items = append(s.items, domain.CartItem{
		Product:       p,
		Quantity:      qty,
		SelectedSize:  size,
		SelectedColor: color,
	})
}

// SetQuantity updates the matching line in place, preserving line
// order. Zero or negative qty removes the line. Absent lines are
// ignored.
func (s *CartStore) SetQuantity(key domain.LineKey, qty int) {
	if qty <= 0 {
		s.RemoveItem(key)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity = qty
			return
		}
	}
}

func (s *CartStore) RemoveItem(key domain.LineKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}
