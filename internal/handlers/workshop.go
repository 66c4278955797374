package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// WorkshopHandler handles workshop record requests.
type WorkshopHandler struct {
	workshops db.WorkshopCollection
}

// NewWorkshopHandler creates a new workshop handler
func NewWorkshopHandler(workshops db.WorkshopCollection) *WorkshopHandler {
	return &WorkshopHandler{workshops: workshops}
}

// RegisterRoutes mounts the workshop endpoints.
func (h *WorkshopHandler) RegisterRoutes(r chi.Router) {
	r.Post("/workshops", h.Create)
	r.Get("/workshops", h.List)
	r.Get("/workshops/{id}", h.Get)
	r.Put("/workshops/{id}", h.Update)
	r.Patch("/workshops/{id}", h.Update)
	r.Delete("/workshops/{id}", h.Delete)
}

// Create inserts a new workshop. Owner may be left null and set later.
func (h *WorkshopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var workshop models.Workshop
	if !decodeBody(w, r, &workshop) {
		return
	}
	if !validateStruct(w, &workshop) {
		return
	}

	created, err := h.workshops.InsertWorkshop(r.Context(), workshop)
	if err != nil {
		log.WithError(err).Error("failed to create workshop")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all workshops.
func (h *WorkshopHandler) List(w http.ResponseWriter, r *http.Request) {
	workshops, err := h.workshops.FindWorkshops(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list workshops")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, workshops)
}

// Get returns a single workshop by id.
func (h *WorkshopHandler) Get(w http.ResponseWriter, r *http.Request) {
	workshop, err := h.workshops.FindWorkshopByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Workshop not found")
		return
	}
	writeJSON(w, http.StatusOK, workshop)
}

// Update merges the supplied fields into a workshop.
func (h *WorkshopHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.WorkshopUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	workshop, err := h.workshops.UpdateWorkshop(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Workshop not found")
		return
	}
	writeJSON(w, http.StatusOK, workshop)
}

// Delete removes a workshop by id. References held by other entities are
// not cascaded.
func (h *WorkshopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workshops.DeleteWorkshop(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Workshop not found")
		return
	}
	writeMessage(w, http.StatusOK, "Workshop deleted successfully")
}
