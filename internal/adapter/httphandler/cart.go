package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
	"github.com/crushcollection/storefront/internal/core/service"
)

// GET v1/cart (200 OK)
// POST v1/cart JSON {product_id, size, color, quantity} (200 OK, 400, 404)
// PATCH v1/cart/{id} JSON {size, color, quantity} (200 OK, 400)
// DELETE v1/cart/{id}?size=M&color=Black (200 OK)
// DELETE v1/cart (200 OK)

type CartHandler struct {
	cart port.CartMutator
}

func RegisterCart(mux *http.ServeMux, cart port.CartMutator) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart", h.AddItem)
	mux.HandleFunc("PATCH /v1/cart/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /v1/cart/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cart.CartItems(sessionID(r))
	writeJSON(w, http.StatusOK, toCartView(items))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var v AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if v.Quantity == 0 {
		v.Quantity = 1
	}

	sid := sessionID(r)
	err := h.cart.AddToCart(sid, v.ProductID, v.Size, v.Color, v.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		log.Error("failed to add item", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toCartView(h.cart.CartItems(sid)))
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	var v UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sid := sessionID(r)
	key := domain.LineKey{
		ProductID: r.PathValue("id"),
		Size:      v.Size,
		Color:     v.Color,
	}
	h.cart.SetCartQuantity(sid, key, v.Quantity)

	writeJSON(w, http.StatusOK, toCartView(h.cart.CartItems(sid)))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	key := domain.LineKey{
		ProductID: r.PathValue("id"),
		Size:      r.URL.Query().Get("size"),
		Color:     r.URL.Query().Get("color"),
	}
	h.cart.RemoveCartItem(sid, key)

	writeJSON(w, http.StatusOK, toCartView(h.cart.CartItems(sid)))
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	h.cart.ClearCart(sid)
	writeJSON(w, http.StatusOK, toCartView(nil))
}
