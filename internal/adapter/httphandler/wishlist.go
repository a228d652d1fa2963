package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crushcollection/storefront/internal/core/port"
	"github.com/crushcollection/storefront/internal/core/service"
)

// GET v1/wishlist (200 OK)
// POST v1/wishlist/{id}/toggle (200 OK, 404)
// POST v1/wishlist/{id}/move-to-cart (200 OK, 404)
// DELETE v1/wishlist/{id} (200 OK)
// DELETE v1/wishlist (200 OK)

type WishlistHandler struct {
	wishlist port.WishlistMutator
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistMutator) {
	h := WishlistHandler{wishlist}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/{id}/toggle", h.Toggle)
	mux.HandleFunc("POST /v1/wishlist/{id}/move-to-cart", h.MoveToCart)
	mux.HandleFunc("DELETE /v1/wishlist/{id}", h.Remove)
	mux.HandleFunc("DELETE /v1/wishlist", h.Clear)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ps := h.wishlist.WishlistProducts(sessionID(r))
	writeJSON(w, http.StatusOK, WishlistView{
		Products: toProducts(ps),
		Count:    len(ps),
	})
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Toggle"
	log := slog.With("op", op)

	added, err := h.wishlist.ToggleWishlist(sessionID(r), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to toggle wishlist", http.StatusInternalServerError)
		log.Error("failed to toggle wishlist", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, ToggleResult{InWishlist: added})
}

func (h WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.MoveToCart"
	log := slog.With("op", op)

	sid := sessionID(r)
	err := h.wishlist.MoveToCart(sid, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to move to cart", http.StatusInternalServerError)
		log.Error("failed to move to cart", "err", err)
		return
	}

	ps := h.wishlist.WishlistProducts(sid)
	writeJSON(w, http.StatusOK, WishlistView{
		Products: toProducts(ps),
		Count:    len(ps),
	})
}

func (h WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	h.wishlist.RemoveFromWishlist(sid, r.PathValue("id"))

	ps := h.wishlist.WishlistProducts(sid)
	writeJSON(w, http.StatusOK, WishlistView{
		Products: toProducts(ps),
		Count:    len(ps),
	})
}

func (h WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.wishlist.ClearWishlist(sessionID(r))
	writeJSON(w, http.StatusOK, WishlistView{Products: []Product{}})
}
