package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// ClientHandler handles client record requests.
type ClientHandler struct {
	clients db.ClientCollection
}

// NewClientHandler creates a new client handler
func NewClientHandler(clients db.ClientCollection) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// RegisterRoutes mounts the client endpoints.
func (h *ClientHandler) RegisterRoutes(r chi.Router) {
	r.Post("/clients", h.Create)
	r.Get("/clients", h.List)
	r.Get("/clients/{id}", h.Get)
	r.Put("/clients/{id}", h.Update)
	r.Patch("/clients/{id}", h.Update)
	r.Delete("/clients/{id}", h.Delete)
}

// Create inserts a new client record.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if !decodeBody(w, r, &client) {
		return
	}
	if !validateStruct(w, &client) {
		return
	}

	created, err := h.clients.InsertClient(r.Context(), client)
	if err != nil {
		log.WithError(err).Error("failed to create client")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.FindClients(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list clients")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// Get returns a single client by id.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.FindClientByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Update merges the supplied fields into a client record.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.ClientUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	client, err := h.clients.UpdateClient(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Delete removes a client by id.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Client not found")
		return
	}
	writeMessage(w, http.StatusOK, "Client deleted successfully")
}
