package memstore

import (
	"sync"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

var _ port.FilterStore = (*FilterStore)(nil)

// FilterStore holds the active filter and sort criteria of one session.
type FilterStore struct {
	mu       sync.Mutex
	criteria domain.FilterCriteria
}

func NewFilterStore() *FilterStore {
	return &FilterStore{criteria: domain.DefaultFilterCriteria()}
}

func (s *FilterStore) SetCategory(c domain.Category) {
	if c != domain.CategoryAll && !c.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Category = c
}

// SetPriceRange ignores inverted ranges, keeping the previous bounds.
func (s *FilterStore) SetPriceRange(r domain.PriceRange) {
	if r.Min > r.Max {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.PriceRange = r
}

func (s *FilterStore) ToggleSize(size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Sizes = toggle(s.criteria.Sizes, size)
}

func (s *FilterStore) ToggleColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Colors = toggle(s.criteria.Colors, color)
}

func (s *FilterStore) SetSortBy(by domain.SortBy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.SortBy = by
}

func (s *FilterStore) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Query = q
}

// Reset restores the defaults. With preserveCategory the category from
// the current navigation context survives the reset.
func (s *FilterStore) Reset(preserveCategory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := s.criteria.Category
	s.criteria = domain.DefaultFilterCriteria()
	if preserveCategory {
		s.criteria.Category = category
	}
}

func (s *FilterStore) Criteria() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.criteria
	c.Sizes = append([]string(nil), s.criteria.Sizes...)
	c.Colors = append([]string(nil), s.criteria.Colors...)
	return c
}

func toggle(vs []string, v string) []string {
	for i := range vs {
		if vs[i] == v {
			return append(vs[:i], vs[i+1:]...)
		}
	}
	return append(vs, v)
}
