package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

const chatFallback = "I'm sorry, I'm having trouble processing your request right now. Please try again later."

func (h *Handlers) tripPlan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Destination string                 `json:"destination"`
		Budget      domain.BudgetTier      `json:"budget"`
		Preferences domain.TripPreferences `json:"preferences"`
	}
	if err := decodeJSONBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := h.Planner.Plan(in.Destination, in.Budget, in.Preferences)
	switch {
	case errors.Is(err, domain.ErrMissingDestination):
		writeError(w, http.StatusBadRequest, "Destination and budget are required")
	case errors.Is(err, domain.ErrInvalidBudget):
		if in.Budget == "" {
			writeError(w, http.StatusBadRequest, "Destination and budget are required")
			return
		}
		writeError(w, http.StatusBadRequest, "Budget must be low, medium, or high")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to generate trip plan")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"tripPlan": plan,
			"message":  "Trip plan generated successfully",
		})
	}
}

func (h *Handlers) tripSuggestions(w http.ResponseWriter, r *http.Request) {
	destination := chi.URLParam(r, "destination")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"destination": destination,
		"suggestions": h.Planner.Suggestions(destination),
	})
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message string `json:"message"`
	}
	if err := decodeJSONBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.Chat.Chat(r.Context(), in.Message)
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "Message is required")
	case err != nil:
		log.Error().Err(err).Msg("chat completion failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":    "Failed to process message",
			"response": chatFallback,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "response": reply})
	}
}
