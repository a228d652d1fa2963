package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryAll         Category = "all"
	CategoryMen         Category = "men"
	CategoryWomen       Category = "women"
	CategoryAccessories Category = "accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryAccessories:
		return true
	}
	return false
}

type SortBy string

const (
	SortByName      SortBy = "name"
	SortByPriceLow  SortBy = "price-low"
	SortByPriceHigh SortBy = "price-high"
)

type (
	// Product is an immutable catalog record.
	// OriginalPrice is zero when the product is not discounted.
	Product struct {
		ProductID     string
		Name          string
		Price         float64
		OriginalPrice float64
		Image         string
		Images        []string
		Category      Category
		Sizes         []string
		Colors        []string
		Description   string
		Featured      bool
	}

	PriceRange struct {
		Min float64
		Max float64
	}
)

func (p Product) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

func (p Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

type FilterCriteria struct {
	Category   Category
	PriceRange PriceRange
	Sizes      []string
	Colors     []string
	SortBy     SortBy
	Query      string
}

const (
	DefaultPriceMin = 0
	DefaultPriceMax = 10000
)

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Category:   CategoryAll,
		PriceRange: PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		SortBy:     SortByName,
	}
}

// FilterProducts returns the products matching every active criterion,
// preserving catalog order. Empty size, color and query criteria
// restrict nothing.
func FilterProducts(ps []Product, c FilterCriteria) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, c FilterCriteria) bool {
	if c.Category != CategoryAll && c.Category != "" && p.Category != c.Category {
		return false
	}
	if p.Price < c.PriceRange.Min || p.Price > c.PriceRange.Max {
		return false
	}
	if len(c.Sizes) != 0 && !intersects(c.Sizes, p.Sizes) {
		return false
	}
	if len(c.Colors) != 0 && !intersects(c.Colors, p.Colors) {
		return false
	}
	if c.Query != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Query)) {
		return false
	}
	return true
}

// SortProducts returns a sorted copy. Unknown sort keys keep the input order.
func SortProducts(ps []Product, by SortBy) []Product {
	out := make([]Product, len(ps))
	copy(out, ps)

	switch by {
	case SortByName:
		cl := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return cl.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	}
	return out
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
