package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

// GET v1/filters (200 OK)
// PATCH v1/filters JSON per-field setters (200 OK, 400 Bad request)
// DELETE v1/filters?preserve_category=true (200 OK)

type FiltersHandler struct {
	filters port.FilterMutator
}

func RegisterFilters(mux *http.ServeMux, filters port.FilterMutator) {
	h := FiltersHandler{filters}
	mux.HandleFunc("GET /v1/filters", h.GetFilters)
	mux.HandleFunc("PATCH /v1/filters", h.PatchFilters)
	mux.HandleFunc("DELETE /v1/filters", h.ResetFilters)
}

func (h FiltersHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	c := h.filters.FilterCriteria(sessionID(r))
	writeJSON(w, http.StatusOK, toCriteria(c))
}

func (h FiltersHandler) PatchFilters(w http.ResponseWriter, r *http.Request) {
	const op = "FiltersHandler.PatchFilters"
	log := slog.With("op", op)

	var patch FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sid := sessionID(r)
	h.apply(sid, patch)

	writeJSON(w, http.StatusOK, toCriteria(h.filters.FilterCriteria(sid)))
}

func (h FiltersHandler) apply(sid string, patch FilterPatch) {
	if patch.Category != nil {
		h.filters.SetFilterCategory(sid, domain.Category(*patch.Category))
	}
	if patch.PriceMin != nil || patch.PriceMax != nil {
		r := h.filters.FilterCriteria(sid).PriceRange
		if patch.PriceMin != nil {
			r.Min = *patch.PriceMin
		}
		if patch.PriceMax != nil {
			r.Max = *patch.PriceMax
		}
		h.filters.SetFilterPriceRange(sid, r)
	}
	if patch.ToggleSize != nil {
		h.filters.ToggleFilterSize(sid, *patch.ToggleSize)
	}
	if patch.ToggleColor != nil {
		h.filters.ToggleFilterColor(sid, *patch.ToggleColor)
	}
	if patch.SortBy != nil {
		h.filters.SetFilterSortBy(sid, domain.SortBy(*patch.SortBy))
	}
	if patch.Query != nil {
		h.filters.SetFilterQuery(sid, *patch.Query)
	}
}

func (h FiltersHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	preserve := r.URL.Query().Get("preserve_category") == "true"

	sid := sessionID(r)
	h.filters.ResetFilters(sid, preserve)

	writeJSON(w, http.StatusOK, toCriteria(h.filters.FilterCriteria(sid)))
}
