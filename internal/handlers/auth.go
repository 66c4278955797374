package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/auth"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService *auth.Service
	users       db.UserCollection
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, users db.UserCollection) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
	}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users/register", h.Register)
	r.Post("/users/login", h.Login)
}

// Register handles user registration. Duplicate emails are rejected; the
// response never contains the password.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateStruct(w, &req) {
		return
	}

	_, err := h.users.FindUserByEmail(r.Context(), req.Email)
	if err == nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		translateError(w, err, "User not found")
		return
	}

	passwordHash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("failed to hash password")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.users.InsertUser(r.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: passwordHash,
		Workshop:     req.Workshop,
	})
	if err != nil {
		log.WithError(err).Error("failed to create user")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login authenticates a user by email and password and returns a bearer
// token. Unknown email and wrong password are indistinguishable.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.FindUserByEmail(r.Context(), req.Email)
	if err != nil || !h.authService.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		log.WithError(err).Error("failed to generate token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}
