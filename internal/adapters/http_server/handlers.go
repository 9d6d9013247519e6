package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

type Handlers struct {
	Auth    *app.AuthService
	Hotels  *app.HotelService
	Planner *app.Planner
	Enrich  *app.EnrichmentService
	Chat    *app.ChatService
}

func (s *Server) MountHandlers(h *Handlers, signer domain.TokenSigner) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Delete("/users/{id}", h.deleteUser)

		r.Get("/countries", h.countries)

		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", h.listHotels)
			r.Post("/search", h.searchHotels)
			r.Get("/{id}", h.getHotel)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(signer))
				r.Post("/", h.createHotel)
				r.Get("/host/my-hotels", h.myHotels)
				r.Put("/{id}", h.updateHotel)
				r.Delete("/{id}", h.deleteHotel)
			})
		})

		r.Get("/info/history/{country}", h.history)
		r.Get("/info/relations/{country1}/{country2}", h.relations)
		r.Get("/info/inflation/{country}", h.inflation)
		r.Get("/pexels/images", h.images)
		r.Get("/cost/cost-of-living", h.costOfLiving)

		r.Post("/trip/plan", h.tripPlan)
		r.Get("/trip/suggestions/{destination}", h.tripSuggestions)

		r.Post("/chatbot/chat", h.chat)
	})
}

// ---- response helpers ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeMessage is the auth/hotel error body: {"message": ...}
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeError is the gateway/trip/chat error body: {"error": ...}
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSONBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- hotel handlers ----

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}
	var l domain.Listing
	if !decodeBody(w, r, &l) {
		return
	}
	if l.Name == "" || l.Location.Country == "" || l.Location.City == "" {
		writeMessage(w, http.StatusBadRequest, "name, location.country and location.city are required")
		return
	}

	created, err := h.Hotels.Create(r.Context(), l, claims)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Only hosts can create hotels")
	case errors.Is(err, domain.ErrInvalidPrice):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Failed to create hotel")
	default:
		writeJSON(w, http.StatusCreated, map[string]any{"message": "Hotel created successfully", "hotel": created})
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.ListAll(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}
	if hotels == nil {
		hotels = []domain.Listing{}
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error retrieving hotel")
		return
	}

	etag, body := calcETagAndBody(hotel)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) myHotels(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r)
	hotels, err := h.Hotels.ListByHost(r.Context(), claims)
	if errors.Is(err, domain.ErrForbidden) {
		writeMessage(w, http.StatusForbidden, "Only hosts can view their hotels")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch your hotels")
		return
	}
	if hotels == nil {
		hotels = []domain.Listing{}
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r)
	var patch domain.ListingPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.Hotels.Update(r.Context(), chi.URLParam(r, "id"), patch, claims)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Hotel not found")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, domain.ErrInvalidPrice):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Update failed")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"message": "Hotel updated successfully", "hotel": updated})
	}
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r)
	err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "id"), claims)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Hotel not found")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Delete failed")
	default:
		writeMessage(w, http.StatusOK, "Hotel deleted successfully")
	}
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	var q domain.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if q.Country == "" {
		writeError(w, http.StatusBadRequest, "Missing 'country' parameter")
		return
	}
	res, err := h.Hotels.Search(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to search hotels")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
