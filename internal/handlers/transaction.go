package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// TransactionHandler handles financial transaction requests.
type TransactionHandler struct {
	transactions db.TransactionCollection
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactions db.TransactionCollection) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// RegisterRoutes mounts the transaction endpoints.
func (h *TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/transactions", h.Create)
	r.Get("/transactions", h.List)
	r.Get("/transactions/{id}", h.Get)
	r.Put("/transactions/{id}", h.Update)
	r.Patch("/transactions/{id}", h.Update)
	r.Delete("/transactions/{id}", h.Delete)
}

// Create inserts a new transaction. No balancing against invoices or
// stock is performed.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var transaction models.Transaction
	if !decodeBody(w, r, &transaction) {
		return
	}
	if !validateStruct(w, &transaction) {
		return
	}

	created, err := h.transactions.InsertTransaction(r.Context(), transaction)
	if err != nil {
		log.WithError(err).Error("failed to create transaction")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactions.FindTransactions(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list transactions")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

// Get returns a single transaction by id.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.transactions.FindTransactionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, transaction)
}

// Update merges the supplied fields into a transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.TransactionUpdate
	if !decodeBody(w, r, &upd) {
		return
	}
	if upd.Type != nil && *upd.Type != models.TransactionIncome && *upd.Type != models.TransactionExpense {
		writeError(w, http.StatusBadRequest, "Invalid type")
		return
	}

	transaction, err := h.transactions.UpdateTransaction(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, transaction)
}

// Delete removes a transaction by id.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.transactions.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Transaction not found")
		return
	}
	writeMessage(w, http.StatusOK, "Transaction deleted successfully")
}
