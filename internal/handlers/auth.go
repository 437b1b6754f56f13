package handlers

import (
	"net/http"

	"concert-ticketing-platform/internal/middleware"
	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/services"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *middleware.SessionMiddleware
}

func NewAuthHandler(auth *services.AuthService, sessions *middleware.SessionMiddleware) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Login(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, models.ErrUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
