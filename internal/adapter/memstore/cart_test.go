package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crushcollection/storefront/internal/adapter/memstore"
	"github.com/crushcollection/storefront/internal/core/domain"
)

var (
	tee = domain.Product{
		ProductID: "tee", Name: "Crew Tee", Price: 500,
		Category: domain.CategoryMen,
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Black", "White"},
	}
	jacket = domain.Product{
		ProductID: "jacket", Name: "Bomber Jacket", Price: 700,
		Category: domain.CategoryMen,
		Sizes:    []string{"S", "M"},
		Colors:   []string{"Red"},
	}
)

func key(p domain.Product, size, color string) domain.LineKey {
	return domain.LineKey{ProductID: p.ProductID, Size: size, Color: color}
}

func TestCartStoreAddItem(t *testing.T) {

	t.Run("MergesQuantitiesOnSameTriple", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)
		s.AddItem(tee, "M", "Black", 2)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, 1500.0, domain.Subtotal(items))
		assert.Equal(t, 3, domain.UnitCount(items))
	})

	t.Run("DifferentSizeIsNewLine", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)
		s.AddItem(tee, "L", "Black", 1)
		s.AddItem(tee, "M", "White", 1)

		assert.Len(t, s.Items(), 3)
	})

	t.Run("SubtotalIndependentOfAddOrder", func(t *testing.T) {
		a := memstore.NewCartStore()
		a.AddItem(tee, "M", "Black", 2)
		a.AddItem(jacket, "S", "Red", 1)
		a.AddItem(tee, "M", "Black", 1)

		b := memstore.NewCartStore()
		b.AddItem(jacket, "S", "Red", 1)
		b.AddItem(tee, "M", "Black", 3)

		assert.Equal(t, domain.Subtotal(a.Items()), domain.Subtotal(b.Items()))
		assert.Equal(t, domain.UnitCount(a.Items()), domain.UnitCount(b.Items()))
	})

	t.Run("RejectsUnknownSize", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(jacket, "XXL", "Red", 1)
		assert.Empty(t, s.Items())
	})

	t.Run("RejectsUnknownColor", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(jacket, "S", "Gold", 1)
		assert.Empty(t, s.Items())
	})

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 0)
		s.AddItem(tee, "M", "Black", -2)
		assert.Empty(t, s.Items())
	})
}

func TestCartStoreSetQuantity(t *testing.T) {

	t.Run("UpdatesInPlaceKeepingOrder", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)
		s.AddItem(jacket, "S", "Red", 1)

		s.SetQuantity(key(tee, "M", "Black"), 5)

		items := s.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "tee", items[0].Product.ProductID)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("ZeroEqualsRemove", func(t *testing.T) {
		viaSet := memstore.NewCartStore()
		viaSet.AddItem(tee, "M", "Black", 2)
		viaSet.AddItem(jacket, "S", "Red", 1)
		viaSet.SetQuantity(key(tee, "M", "Black"), 0)

		viaRemove := memstore.NewCartStore()
		viaRemove.AddItem(tee, "M", "Black", 2)
		viaRemove.AddItem(jacket, "S", "Red", 1)
		viaRemove.RemoveItem(key(tee, "M", "Black"))

		assert.Equal(t, viaRemove.Items(), viaSet.Items())
	})

	t.Run("AbsentLineIsNoop", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)
		s.SetQuantity(key(jacket, "S", "Red"), 4)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestCartStoreRemoveAndClear(t *testing.T) {

	t.Run("RemoveAbsentIsNoop", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)
		s.RemoveItem(key(tee, "S", "Black"))
		assert.Len(t, s.Items(), 1)
	})

	t.Run("Clear", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)
		s.AddItem(jacket, "S", "Red", 2)
		s.Clear()
		assert.Empty(t, s.Items())
	})

	t.Run("ItemsReturnsCopy", func(t *testing.T) {
		s := memstore.NewCartStore()
		s.AddItem(tee, "M", "Black", 1)

		items := s.Items()
		items[0].Quantity = 99

		assert.Equal(t, 1, s.Items()[0].Quantity)
	})
}
