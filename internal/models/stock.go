package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockStatusAvailable is the default status for new stock entries.
const StockStatusAvailable = "available"

// Stock represents the quantity of a product held at a workshop.
// Quantity is assumed non-negative but not enforced by the store.
type Stock struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Workshop    primitive.ObjectID `bson:"workshop" json:"workshop" validate:"required"`
	Product     primitive.ObjectID `bson:"product" json:"product" validate:"required"`
	Supplier    primitive.ObjectID `bson:"supplier" json:"supplier" validate:"required"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	LastUpdated time.Time          `bson:"last_updated" json:"last_updated"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// StockUpdate carries the fields of a partial stock update.
type StockUpdate struct {
	Workshop *primitive.ObjectID `json:"workshop,omitempty"`
	Product  *primitive.ObjectID `json:"product,omitempty"`
	Supplier *primitive.ObjectID `json:"supplier,omitempty"`
	Quantity *int                `json:"quantity,omitempty"`
	Status   *string             `json:"status,omitempty"`
}
