package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/service"
	"github.com/nordlicht/nordlicht/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userResponse struct {
	ID    string  `json:"id"`
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

func newUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondValidationError(w, "request body must be valid JSON")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, validation.ErrWeakPassword):
			respondValidationError(w, err.Error())
		case errors.Is(err, service.ErrEmailAlreadyExists):
			respondError(w, http.StatusConflict, err.Error())
		default:
			slog.Error("failed to register user", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to register")
		}
		return
	}

	h.startSession(w, user)
	respondData(w, newUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondValidationError(w, "request body must be valid JSON")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		slog.Error("failed to log in user", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.startSession(w, user)
	respondData(w, newUserResponse(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondData(w, nil)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, user *model.User) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		return
	}
	h.authService.SetJWTCookie(w, token)
}
