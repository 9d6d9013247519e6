package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

func (h *Handlers) countries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Enrich.Countries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch countries")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) history(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	summary, err := h.Enrich.History(r.Context(), country)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "History not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to fetch history")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"country": country, "history": summary})
	}
}

func (h *Handlers) relations(w http.ResponseWriter, r *http.Request) {
	c1 := chi.URLParam(r, "country1")
	c2 := chi.URLParam(r, "country2")
	summary, err := h.Enrich.Relations(r.Context(), c1, c2)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Relations not found between "+c1+" and "+c2)
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to fetch relations")
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"country1":  c1,
			"country2":  c2,
			"relations": summary,
		})
	}
}

func (h *Handlers) inflation(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	out, err := h.Enrich.Inflation(r.Context(), country)
	switch {
	case errors.Is(err, domain.ErrUnknownCountry):
		writeError(w, http.StatusBadRequest, "Invalid country name")
	case errors.Is(err, domain.ErrNoData):
		writeError(w, http.StatusNotFound, "No recent inflation data for "+country)
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to fetch inflation data")
	default:
		writeJSON(w, http.StatusOK, out)
	}
}

func (h *Handlers) images(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Missing query parameter")
		return
	}
	out, err := h.Enrich.Images(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch images")
		return
	}
	if out == nil {
		out = []domain.Image{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": query, "images": out})
}

func (h *Handlers) costOfLiving(w http.ResponseWriter, r *http.Request) {
	place := r.URL.Query().Get("place")
	kind := r.URL.Query().Get("type")
	if place == "" || kind == "" {
		writeError(w, http.StatusBadRequest, `Missing "place" or "type" query parameters.`)
		return
	}
	out, err := h.Enrich.CostOfLiving(r.Context(), place, kind)
	switch {
	case errors.Is(err, domain.ErrNoData):
		writeError(w, http.StatusNotFound, "No results found for "+place)
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to fetch cost of living data")
	default:
		writeJSON(w, http.StatusOK, out)
	}
}
