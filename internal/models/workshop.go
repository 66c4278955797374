package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workshop represents a repair workshop. The owner reference may be nil
// transiently while the owning user is being bootstrapped.
type Workshop struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name" validate:"required"`
	Address   string              `bson:"address" json:"address" validate:"required"`
	Contact   string              `bson:"contact" json:"contact" validate:"required"`
	Owner     *primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}

// WorkshopUpdate carries the fields of a partial workshop update.
type WorkshopUpdate struct {
	Name    *string             `json:"name,omitempty"`
	Address *string             `json:"address,omitempty"`
	Contact *string             `json:"contact,omitempty"`
	Owner   *primitive.ObjectID `json:"owner,omitempty"`
}
