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

// POST v1/checkout (201 Created, 409 empty cart)
// GET v1/checkout (200 OK, 404 no checkout)
// PUT v1/checkout/shipping JSON (200 OK, 400, 404)
// PUT v1/checkout/payment JSON (200 OK, 400, 404)
// POST v1/checkout/next (200 OK, 422 gate failed, 404)
// POST v1/checkout/back (200 OK, 404)
// POST v1/checkout/place-order (200 OK, 404, 409)
// DELETE v1/checkout (204 No content)

type CheckoutHandler struct {
	checkout port.CheckoutSequencer
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutSequencer) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout", h.Start)
	mux.HandleFunc("GET /v1/checkout", h.State)
	mux.HandleFunc("PUT /v1/checkout/shipping", h.PutShipping)
	mux.HandleFunc("PUT /v1/checkout/payment", h.PutPayment)
	mux.HandleFunc("POST /v1/checkout/next", h.Next)
	mux.HandleFunc("POST /v1/checkout/back", h.Back)
	mux.HandleFunc("POST /v1/checkout/place-order", h.PlaceOrder)
	mux.HandleFunc("DELETE /v1/checkout", h.Abandon)
}

func (h CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	v, err := h.checkout.StartCheckout(sessionID(r))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			return
		}
		h.fail(w, "failed to start checkout", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCheckoutView(v))
}

func (h CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	v, err := h.checkout.CheckoutState(sessionID(r))
	if err != nil {
		if errors.Is(err, service.ErrNoCheckout) {
			http.Error(w, "no checkout in progress", http.StatusNotFound)
			return
		}
		h.fail(w, "failed to read checkout", err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(v))
}

func (h CheckoutHandler) PutShipping(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PutShipping"
	log := slog.With("op", op)

	var v ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sid := sessionID(r)
	err := h.checkout.SetShipping(sid, domain.ShippingInfo{
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		Pincode:   v.Pincode,
	})
	if err != nil {
		h.handleCheckoutErr(w, err)
		return
	}

	h.writeState(w, sid)
}

func (h CheckoutHandler) PutPayment(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PutPayment"
	log := slog.With("op", op)

	var v PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sid := sessionID(r)
	err := h.checkout.SetPayment(sid, domain.PaymentInfo{
		Method:     domain.PaymentMethod(v.Method),
		CardNumber: v.CardNumber,
		ExpiryDate: v.ExpiryDate,
		CVV:        v.CVV,
		NameOnCard: v.NameOnCard,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPaymentMethod) {
			http.Error(w, "invalid payment method", http.StatusBadRequest)
			return
		}
		h.handleCheckoutErr(w, err)
		return
	}

	h.writeState(w, sid)
}

// Next advances a stage when its gate passes. A failing gate answers
// 422 with the field errors on the unchanged stage.
func (h CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	v, err := h.checkout.Next(sessionID(r))
	if err != nil {
		h.handleCheckoutErr(w, err)
		return
	}

	status := http.StatusOK
	if len(v.Errors) != 0 {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, toCheckoutView(v))
}

func (h CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	v, err := h.checkout.Back(sessionID(r))
	if err != nil {
		h.handleCheckoutErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(v))
}

func (h CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PlaceOrder"
	log := slog.With("op", op)

	conf, err := h.checkout.PlaceOrder(r.Context(), sessionID(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCheckout):
			http.Error(w, "no checkout in progress", http.StatusNotFound)
		case errors.Is(err, service.ErrNotReviewStage):
			http.Error(w, "order can only be placed at review", http.StatusConflict)
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		default:
			http.Error(w, "failed to place order", http.StatusInternalServerError)
			log.Error("failed to place order", "err", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, OrderConfirmation{
		OrderID:  conf.OrderID,
		Pricing:  toBreakdown(conf.Pricing),
		PlacedAt: conf.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (h CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	h.checkout.Abandon(sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h CheckoutHandler) writeState(w http.ResponseWriter, sid string) {
	v, err := h.checkout.CheckoutState(sid)
	if err != nil {
		h.handleCheckoutErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(v))
}

func (h CheckoutHandler) handleCheckoutErr(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNoCheckout) {
		http.Error(w, "no checkout in progress", http.StatusNotFound)
		return
	}
	h.fail(w, "checkout failed", err)
}

func (h CheckoutHandler) fail(w http.ResponseWriter, msg string, err error) {
	const op = "CheckoutHandler.fail"
	http.Error(w, msg, http.StatusInternalServerError)
	slog.Error(msg, "op", op, "err", err)
}
