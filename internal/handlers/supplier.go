package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// SupplierHandler handles supplier record requests.
type SupplierHandler struct {
	suppliers db.SupplierCollection
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(suppliers db.SupplierCollection) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// RegisterRoutes mounts the supplier endpoints.
func (h *SupplierHandler) RegisterRoutes(r chi.Router) {
	r.Post("/suppliers", h.Create)
	r.Get("/suppliers", h.List)
	r.Get("/suppliers/{id}", h.Get)
	r.Put("/suppliers/{id}", h.Update)
	r.Patch("/suppliers/{id}", h.Update)
	r.Delete("/suppliers/{id}", h.Delete)
}

// Create inserts a new supplier.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var supplier models.Supplier
	if !decodeBody(w, r, &supplier) {
		return
	}
	if !validateStruct(w, &supplier) {
		return
	}

	created, err := h.suppliers.InsertSupplier(r.Context(), supplier)
	if err != nil {
		log.WithError(err).Error("failed to create supplier")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all suppliers.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.FindSuppliers(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list suppliers")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// Get returns a single supplier by id.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.suppliers.FindSupplierByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// Update merges the supplied fields into a supplier.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.SupplierUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	supplier, err := h.suppliers.UpdateSupplier(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// Delete removes a supplier by id.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.suppliers.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Supplier not found")
		return
	}
	writeMessage(w, http.StatusOK, "Supplier deleted successfully")
}
