package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/auth"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// UserHandler handles user management requests. Responses never include
// the password hash.
type UserHandler struct {
	authService *auth.Service
	users       db.UserCollection
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, users db.UserCollection) *UserHandler {
	return &UserHandler{
		authService: authService,
		users:       users,
	}
}

// RegisterRoutes mounts the user management endpoints.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.List)
	r.Get("/users/{id}", h.Get)
	r.Put("/users/{id}", h.Update)
	r.Patch("/users/{id}", h.Update)
	r.Delete("/users/{id}", h.Delete)
}

// List returns all users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindUsers(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list users")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Get returns a single user by id.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Update merges the supplied fields into a user. A supplied password is
// re-hashed before it is stored.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.UserUpdate
	if !decodeBody(w, r, &upd) {
		return
	}
	if upd.Role != nil && !models.IsValidRole(*upd.Role) {
		writeError(w, http.StatusBadRequest, "Invalid role")
		return
	}
	if upd.Password != nil {
		hash, err := h.authService.HashPassword(*upd.Password)
		if err != nil {
			log.WithError(err).Error("failed to hash password")
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		upd.Password = &hash
	}

	user, err := h.users.UpdateUser(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete removes a user by id.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "User not found")
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
