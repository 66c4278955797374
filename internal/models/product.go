package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a spare part or consumable supplied to workshops.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Dimensions    string             `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Brand         string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Compatibility string             `bson:"compatibility,omitempty" json:"compatibility,omitempty"`
	Supplier      primitive.ObjectID `bson:"supplier" json:"supplier" validate:"required"`
	PhotoURL      string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProductUpdate carries the fields of a partial product update.
type ProductUpdate struct {
	Name          *string             `json:"name,omitempty"`
	Description   *string             `json:"description,omitempty"`
	Dimensions    *string             `json:"dimensions,omitempty"`
	Brand         *string             `json:"brand,omitempty"`
	Compatibility *string             `json:"compatibility,omitempty"`
	Supplier      *primitive.ObjectID `json:"supplier,omitempty"`
	PhotoURL      *string             `json:"photo_url,omitempty"`
}
