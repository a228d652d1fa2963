package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crushcollection/storefront/internal/adapter/memstore"
	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/service"
)

type stubCatalog struct {
	products []domain.Product
}

func (c stubCatalog) All() []domain.Product {
	return c.products
}

func (c stubCatalog) Get(productID string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ProductID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (c stubCatalog) Featured() []domain.Product {
	var fs []domain.Product
	for _, p := range c.products {
		if p.Featured {
			fs = append(fs, p)
		}
	}
	return fs
}

var (
	dress = domain.Product{
		ProductID: "dress", Name: "Silk Midi Dress", Price: 899,
		Category: domain.CategoryWomen,
		Sizes:    []string{"S", "M"},
		Colors:   []string{"Red", "Black"},
		Featured: true,
	}
	tee = domain.Product{
		ProductID: "tee", Name: "Crew Tee", Price: 500,
		Category: domain.CategoryMen,
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Black", "White"},
	}
	belt = domain.Product{
		ProductID: "belt", Name: "Leather Belt", Price: 499,
		Category: domain.CategoryAccessories,
		Sizes:    []string{"M"},
		Colors:   []string{"Black"},
	}
)

func newStorefront() service.Storefront {
	return service.NewStorefront(
		stubCatalog{products: []domain.Product{dress, tee, belt}},
		memstore.NewSessionRegistry(),
	)
}

func TestListProducts(t *testing.T) {
	const sid = "visitor-1"

	t.Run("AllByNameByDefault", func(t *testing.T) {
		s := newStorefront()

		ps := s.ListProducts(sid, "")
		require.Len(t, ps, 3)
		assert.Equal(t, "tee", ps[0].ProductID)
		assert.Equal(t, "belt", ps[1].ProductID)
		assert.Equal(t, "dress", ps[2].ProductID)
	})

	t.Run("SeedCategoryReseedsFilter", func(t *testing.T) {
		s := newStorefront()

		ps := s.ListProducts(sid, domain.CategoryWomen)
		require.Len(t, ps, 1)
		assert.Equal(t, "dress", ps[0].ProductID)

		// the store owns the category after the seed
		assert.Equal(t, domain.CategoryWomen, s.FilterCriteria(sid).Category)

		ps = s.ListProducts(sid, "")
		require.Len(t, ps, 1)
	})

	t.Run("FilterMutatorsNarrowTheView", func(t *testing.T) {
		s := newStorefront()

		s.SetFilterPriceRange(sid, domain.PriceRange{Min: 0, Max: 600})
		s.ToggleFilterColor(sid, "Black")
		s.SetFilterSortBy(sid, domain.SortByPriceHigh)

		ps := s.ListProducts(sid, "")
		require.Len(t, ps, 2)
		assert.Equal(t, "tee", ps[0].ProductID)
		assert.Equal(t, "belt", ps[1].ProductID)
	})

	t.Run("SessionsDoNotShareFilters", func(t *testing.T) {
		s := newStorefront()

		s.SetFilterCategory("visitor-a", domain.CategoryMen)

		assert.Len(t, s.ListProducts("visitor-a", ""), 1)
		assert.Len(t, s.ListProducts("visitor-b", ""), 3)
	})
}

func TestAddToCart(t *testing.T) {
	const sid = "visitor-1"

	t.Run("UnknownProduct", func(t *testing.T) {
		s := newStorefront()

		err := s.AddToCart(sid, "missing", "M", "Black", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrProductNotFound)
		assert.Empty(t, s.CartItems(sid))
	})

	t.Run("MergesOnRepeatAdd", func(t *testing.T) {
		s := newStorefront()

		require.NoError(t, s.AddToCart(sid, "tee", "M", "Black", 1))
		require.NoError(t, s.AddToCart(sid, "tee", "M", "Black", 2))

		items := s.CartItems(sid)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})
}

func TestWishlist(t *testing.T) {
	const sid = "visitor-1"

	t.Run("ToggleReportsMembership", func(t *testing.T) {
		s := newStorefront()

		in, err := s.ToggleWishlist(sid, "dress")
		require.NoError(t, err)
		assert.True(t, in)

		in, err = s.ToggleWishlist(sid, "dress")
		require.NoError(t, err)
		assert.False(t, in)
		assert.Empty(t, s.WishlistProducts(sid))
	})

	t.Run("ToggleUnknownProduct", func(t *testing.T) {
		s := newStorefront()

		_, err := s.ToggleWishlist(sid, "missing")
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("MoveToCartUsesFirstVariant", func(t *testing.T) {
		s := newStorefront()

		_, err := s.ToggleWishlist(sid, "dress")
		require.NoError(t, err)

		require.NoError(t, s.MoveToCart(sid, "dress"))

		items := s.CartItems(sid)
		require.Len(t, items, 1)
		assert.Equal(t, "S", items[0].SelectedSize)
		assert.Equal(t, "Red", items[0].SelectedColor)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Empty(t, s.WishlistProducts(sid))
	})
}

func TestSummary(t *testing.T) {
	const sid = "visitor-1"
	s := newStorefront()

	require.NoError(t, s.AddToCart(sid, "tee", "M", "Black", 1))
	require.NoError(t, s.AddToCart(sid, "tee", "M", "Black", 2))
	_, err := s.ToggleWishlist(sid, "dress")
	require.NoError(t, err)

	sum := s.Summary(sid, domain.PaymentCard)

	assert.Equal(t, 3, sum.CartCount)
	assert.Equal(t, 1500.0, sum.CartTotal)
	assert.Equal(t, 1, sum.WishlistCount)
	assert.Equal(t, 1500.0, sum.Pricing.Subtotal)
	assert.Equal(t, 0.0, sum.Pricing.Shipping)
	assert.Equal(t, 270.0, sum.Pricing.Tax)
	assert.Equal(t, 1770.0, sum.Pricing.GrandTotal)
}
