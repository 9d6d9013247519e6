package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var in app.RegisterInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		writeMessage(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if in.Role == "" {
		in.Role = domain.RoleGuest
	}
	if !in.Role.Valid() {
		writeMessage(w, http.StatusBadRequest, "role must be guest or host")
		return
	}

	err := h.Auth.Register(r.Context(), in)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "User already exists")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
	default:
		writeMessage(w, http.StatusCreated, "User registered successfully")
	}
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	token, acc, err := h.Auth.Login(r.Context(), in.Email, in.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Login failed")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"token":   token,
			"user":    acc,
		})
	}
}

func (h *Handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.Auth.DeleteAccount(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Failed to delete user")
	default:
		writeMessage(w, http.StatusOK, "User deleted successfully")
	}
}
