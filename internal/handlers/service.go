package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// ServiceHandler handles service catalog requests.
type ServiceHandler struct {
	services db.ServiceCollection
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(services db.ServiceCollection) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// RegisterRoutes mounts the service endpoints.
func (h *ServiceHandler) RegisterRoutes(r chi.Router) {
	r.Post("/services", h.Create)
	r.Get("/services", h.List)
	r.Get("/services/{id}", h.Get)
	r.Put("/services/{id}", h.Update)
	r.Patch("/services/{id}", h.Update)
	r.Delete("/services/{id}", h.Delete)
}

// Create inserts a new service.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if !decodeBody(w, r, &service) {
		return
	}
	if !validateStruct(w, &service) {
		return
	}

	created, err := h.services.InsertService(r.Context(), service)
	if err != nil {
		log.WithError(err).Error("failed to create service")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all services.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.FindServices(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list services")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// Get returns a single service by id.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.services.FindServiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Service not found")
		return
	}
	writeJSON(w, http.StatusOK, service)
}

// Update merges the supplied fields into a service.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.ServiceUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	service, err := h.services.UpdateService(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Service not found")
		return
	}
	writeJSON(w, http.StatusOK, service)
}

// Delete removes a service by id.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Service not found")
		return
	}
	writeMessage(w, http.StatusOK, "Service deleted successfully")
}
