package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// InvoiceHandler handles invoice record requests.
type InvoiceHandler struct {
	invoices db.InvoiceCollection
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoices db.InvoiceCollection) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// RegisterRoutes mounts the invoice endpoints.
func (h *InvoiceHandler) RegisterRoutes(r chi.Router) {
	r.Post("/invoices", h.Create)
	r.Get("/invoices", h.List)
	r.Get("/invoices/{id}", h.Get)
	r.Put("/invoices/{id}", h.Update)
	r.Patch("/invoices/{id}", h.Update)
	r.Delete("/invoices/{id}", h.Delete)
}

// Create inserts a new invoice.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if !decodeBody(w, r, &invoice) {
		return
	}
	if !validateStruct(w, &invoice) {
		return
	}

	created, err := h.invoices.InsertInvoice(r.Context(), invoice)
	if err != nil {
		log.WithError(err).Error("failed to create invoice")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all invoices.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.FindInvoices(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list invoices")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

// Get returns a single invoice by id.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.invoices.FindInvoiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// Update merges the supplied fields into an invoice.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.InvoiceUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	invoice, err := h.invoices.UpdateInvoice(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// Delete removes an invoice by id.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoices.DeleteInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Invoice not found")
		return
	}
	writeMessage(w, http.StatusOK, "Invoice deleted successfully")
}
