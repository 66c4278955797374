package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// ProductHandler handles product record requests.
type ProductHandler struct {
	products db.ProductCollection
}

// NewProductHandler creates a new product handler
func NewProductHandler(products db.ProductCollection) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes mounts the product endpoints.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Post("/products", h.Create)
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Get)
	r.Put("/products/{id}", h.Update)
	r.Patch("/products/{id}", h.Update)
	r.Delete("/products/{id}", h.Delete)
}

// Create inserts a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !decodeBody(w, r, &product) {
		return
	}
	if !validateStruct(w, &product) {
		return
	}

	created, err := h.products.InsertProduct(r.Context(), product)
	if err != nil {
		log.WithError(err).Error("failed to create product")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.FindProducts(r.Context(), nil)
	if err != nil {
		log.WithError(err).Error("failed to list products")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Get returns a single product by id.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.FindProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Update merges the supplied fields into a product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.ProductUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	product, err := h.products.UpdateProduct(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Delete removes a product by id.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Product not found")
		return
	}
	writeMessage(w, http.StatusOK, "Product deleted successfully")
}
