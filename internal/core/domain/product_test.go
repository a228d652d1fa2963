package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crushcollection/storefront/internal/core/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ProductID: "p1", Name: "Silk Midi Dress", Price: 899,
			Category: domain.CategoryWomen,
			Sizes:    []string{"S", "M", "L"},
			Colors:   []string{"Red", "Black"},
		},
		{
			ProductID: "p2", Name: "Classic Denim Jacket", Price: 1499,
			Category: domain.CategoryMen,
			Sizes:    []string{"M", "L", "XL"},
			Colors:   []string{"Blue"},
		},
		{
			ProductID: "p3", Name: "Ankle Boots", Price: 999,
			Category: domain.CategoryWomen,
			Sizes:    []string{"S", "M"},
			Colors:   []string{"Black", "Grey"},
		},
		{
			ProductID: "p4", Name: "Leather Belt", Price: 499,
			Category: domain.CategoryAccessories,
			Sizes:    []string{"M"},
			Colors:   []string{"Black"},
		},
		{
			ProductID: "p5", Name: "Wrap Skirt", Price: 1099,
			Category: domain.CategoryWomen,
			Sizes:    []string{"XS", "S"},
			Colors:   []string{"Pink"},
		},
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ProductID
	}
	return out
}

func TestFilterProducts(t *testing.T) {

	t.Run("DefaultCriteriaKeepsCatalogOrder", func(t *testing.T) {
		got := domain.FilterProducts(testCatalog(), domain.DefaultFilterCriteria())
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(got))
	})

	t.Run("Conjunction", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.Category = domain.CategoryWomen
		c.PriceRange = domain.PriceRange{Min: 0, Max: 1000}
		c.Sizes = []string{"M"}

		got := domain.FilterProducts(testCatalog(), c)

		// only women's products priced <=1000 offering size M,
		// in catalog order
		assert.Equal(t, []string{"p1", "p3"}, ids(got))
	})

	t.Run("ColorIntersection", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.Colors = []string{"Grey", "Pink"}

		got := domain.FilterProducts(testCatalog(), c)
		assert.Equal(t, []string{"p3", "p5"}, ids(got))
	})

	t.Run("PriceRangeBoundsInclusive", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.PriceRange = domain.PriceRange{Min: 499, Max: 999}

		got := domain.FilterProducts(testCatalog(), c)
		assert.Equal(t, []string{"p1", "p3", "p4"}, ids(got))
	})

	t.Run("QueryMatchesNameCaseInsensitive", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.Query = "dress"

		got := domain.FilterProducts(testCatalog(), c)
		assert.Equal(t, []string{"p1"}, ids(got))
	})

	t.Run("Idempotent", func(t *testing.T) {
		c := domain.DefaultFilterCriteria()
		c.Category = domain.CategoryWomen
		c.Sizes = []string{"S"}

		once := domain.FilterProducts(testCatalog(), c)
		twice := domain.FilterProducts(once, c)
		assert.Equal(t, once, twice)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		got := domain.FilterProducts(nil, domain.DefaultFilterCriteria())
		assert.Empty(t, got)
	})
}

func TestSortProducts(t *testing.T) {

	t.Run("ByName", func(t *testing.T) {
		got := domain.SortProducts(testCatalog(), domain.SortByName)
		assert.Equal(t, []string{"p3", "p2", "p4", "p1", "p5"}, ids(got))
	})

	t.Run("PriceLowThenHighReverses", func(t *testing.T) {
		// all prices are distinct
		low := domain.SortProducts(testCatalog(), domain.SortByPriceLow)
		high := domain.SortProducts(testCatalog(), domain.SortByPriceHigh)

		require.Len(t, high, len(low))
		for i := range low {
			assert.Equal(t, low[i].ProductID, high[len(high)-1-i].ProductID)
		}
	})

	t.Run("UnknownKeyKeepsOrder", func(t *testing.T) {
		got := domain.SortProducts(testCatalog(), domain.SortBy("rating"))
		assert.Equal(t, ids(testCatalog()), ids(got))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		in := testCatalog()
		domain.SortProducts(in, domain.SortByPriceHigh)
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(in))
	})
}
