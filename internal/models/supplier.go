package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supplier represents a parts supplier.
type Supplier struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name" validate:"required"`
	Contact          string               `bson:"contact" json:"contact" validate:"required"`
	SuppliedProducts []primitive.ObjectID `bson:"supplied_products" json:"supplied_products"`
	CommercialTerms  string               `bson:"commercial_terms,omitempty" json:"commercial_terms,omitempty"`
	CreatedAt        time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at" json:"updated_at"`
}

// SupplierUpdate carries the fields of a partial supplier update.
type SupplierUpdate struct {
	Name             *string               `json:"name,omitempty"`
	Contact          *string               `json:"contact,omitempty"`
	SuppliedProducts *[]primitive.ObjectID `json:"supplied_products,omitempty"`
	CommercialTerms  *string               `json:"commercial_terms,omitempty"`
}
