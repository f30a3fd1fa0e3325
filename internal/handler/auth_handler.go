package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"messages/internal/middleware"
	"messages/internal/service"
)

type sessionViewModel struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthHandler struct {
	auth     service.AuthService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewAuthHandler(auth service.AuthService, validate *validator.Validate, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth, validate, logger}
}

// Register handles POST /api/account/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload accountBindingModel
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := checkPayload(h.validate, payload); err != nil {
		respondError(w, h.logger, err)
		return
	}

	user, err := h.auth.Register(payload.Username, payload.Password)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login handles POST /api/account/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload accountBindingModel
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := checkPayload(h.validate, payload); err != nil {
		respondError(w, h.logger, err)
		return
	}

	session, err := h.auth.Login(payload.Username, payload.Password)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionViewModel{
		Token:     session.Token,
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/account/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, messageResponse{"Authorization has been denied for this request."})
		return
	}

	if err := h.auth.Logout(token); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{"Logged out."})
}
