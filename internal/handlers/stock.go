package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// StockHandler handles stock record requests.
type StockHandler struct {
	stocks db.StockCollection
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stocks db.StockCollection) *StockHandler {
	return &StockHandler{stocks: stocks}
}

// RegisterRoutes mounts the stock endpoints.
func (h *StockHandler) RegisterRoutes(r chi.Router) {
	r.Post("/stocks", h.Create)
	r.Get("/stocks", h.List)
	r.Get("/stocks/{id}", h.Get)
	r.Put("/stocks/{id}", h.Update)
	r.Patch("/stocks/{id}", h.Update)
	r.Delete("/stocks/{id}", h.Delete)
}

// Create inserts a new stock entry.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var stock models.Stock
	if !decodeBody(w, r, &stock) {
		return
	}
	if !validateStruct(w, &stock) {
		return
	}

	created, err := h.stocks.InsertStock(r.Context(), stock)
	if err != nil {
		log.WithError(err).Error("failed to create stock entry")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all stock entries.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.stocks.FindStocks(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list stock entries")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, stocks)
}

// Get returns a single stock entry by id.
func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	stock, err := h.stocks.FindStockByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Stock not found")
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

// Update merges the supplied fields into a stock entry.
func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.StockUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	stock, err := h.stocks.UpdateStock(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Stock not found")
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

// Delete removes a stock entry by id.
func (h *StockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.stocks.DeleteStock(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Stock not found")
		return
	}
	writeMessage(w, http.StatusOK, "Stock deleted successfully")
}
