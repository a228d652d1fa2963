package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*FileCatalog)(nil)

var (
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrInvalidProduct     = errors.New("invalid product record")
)

type product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Description   string   `json:"description"`
	Featured      bool     `json:"featured,omitempty"`
}

// FileCatalog is a read-only product list loaded once from a JSON seed
// file. Insertion order is the default display order. An empty catalog
// is legal.
type FileCatalog struct {
	products []domain.Product
	index    map[string]int
}

func NewFileCatalog(path string) (*FileCatalog, error) {
	const op = "NewFileCatalog"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var vs []product
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("%s: failed to parse seed: %w", op, err)
	}

	c := &FileCatalog{index: make(map[string]int, len(vs))}
	for _, v := range vs {
		p, err := toDomain(v)
		if err != nil {
			return nil, fmt.Errorf("%s: product %q: %w", op, v.ID, err)
		}
		if _, exists := c.index[p.ProductID]; exists {
			return nil, fmt.Errorf(
				"%s: product %q: %w", op, v.ID, ErrDuplicateProductID,
			)
		}
		c.index[p.ProductID] = len(c.products)
		c.products = append(c.products, p)
	}

	slog.Info("catalog loaded", "op", op, "nProducts", len(c.products))
	return c, nil
}

func toDomain(v product) (domain.Product, error) {
	p := domain.Product{
		ProductID:     v.ID,
		Name:          v.Name,
		Price:         v.Price,
		OriginalPrice: v.OriginalPrice,
		Image:         v.Image,
		Images:        v.Images,
		Category:      domain.Category(v.Category),
		Sizes:         v.Sizes,
		Colors:        v.Colors,
		Description:   v.Description,
		Featured:      v.Featured,
	}

	switch {
	case p.ProductID == "":
		return domain.Product{}, fmt.Errorf("%w: empty id", ErrInvalidProduct)
	case p.Price <= 0:
		return domain.Product{}, fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	case p.OriginalPrice != 0 && p.OriginalPrice < p.Price:
		return domain.Product{}, fmt.Errorf(
			"%w: original price below current price", ErrInvalidProduct,
		)
	case len(p.Images) == 0:
		return domain.Product{}, fmt.Errorf("%w: no images", ErrInvalidProduct)
	case !p.Category.Valid():
		return domain.Product{}, fmt.Errorf(
			"%w: unknown category %q", ErrInvalidProduct, p.Category,
		)
	case len(p.Sizes) == 0:
		return domain.Product{}, fmt.Errorf("%w: no sizes", ErrInvalidProduct)
	case len(p.Colors) == 0:
		return domain.Product{}, fmt.Errorf("%w: no colors", ErrInvalidProduct)
	}

	return p, nil
}

// All returns the catalog in insertion order.
func (c *FileCatalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *FileCatalog) Get(productID string) (domain.Product, bool) {
	i, ok := c.index[productID]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *FileCatalog) Featured() []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
