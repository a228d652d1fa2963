package httphandler

import (
	"net/http"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

// GET v1/summary?payment_method=cod (200 OK)

type SummaryHandler struct {
	summary port.SummaryReader
}

func RegisterSummary(mux *http.ServeMux, summary port.SummaryReader) {
	h := SummaryHandler{summary}
	mux.HandleFunc("GET /v1/summary", h.GetSummary)
}

func (h SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	method := domain.PaymentMethod(r.URL.Query().Get("payment_method"))

	s := h.summary.Summary(sessionID(r), method)
	writeJSON(w, http.StatusOK, Summary{
		CartCount:     s.CartCount,
		CartTotal:     s.CartTotal,
		WishlistCount: s.WishlistCount,
		Pricing:       toBreakdown(s.Pricing),
	})
}
