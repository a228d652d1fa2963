package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

// GET v1/products?category=women (200 OK)
// GET v1/products/featured (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)

type ProductsHandler struct {
	reader port.ProductsReader
	sales  port.SalesReader
}

func RegisterProducts(
	mux *http.ServeMux, reader port.ProductsReader, sales port.SalesReader,
) {
	h := ProductsHandler{reader, sales}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/featured", h.Featured)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

// ListProducts renders the filtered and sorted catalog view. The
// category query parameter is the navigation context seeding the
// session's filter store.
func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	seed := domain.Category(r.URL.Query().Get("category"))

	ps := h.reader.ListProducts(sessionID(r), seed)
	writeJSON(w, http.StatusOK, ProductList{
		Products: toProducts(ps),
		Total:    len(ps),
	})
}

func (h ProductsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	ps := h.reader.FeaturedProducts()
	writeJSON(w, http.StatusOK, ProductList{
		Products: toProducts(ps),
		Total:    len(ps),
	})
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	productID := r.PathValue("id")
	p, ok := h.reader.GetProduct(productID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	sold, err := h.sales.UnitsSold(productID)
	if err != nil {
		// display-only hint, the product view survives without it
		log.Warn("failed to read units sold", "err", err)
	}

	writeJSON(w, http.StatusOK, ProductDetail{
		Product:   toProduct(p),
		UnitsSold: sold,
	})
}
