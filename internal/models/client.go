package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client represents a workshop customer. ServiceHistory accumulates
// appointment references and is appended to when appointments are created.
type Client struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name           string               `bson:"name" json:"name" validate:"required"`
	Email          string               `bson:"email" json:"email" validate:"required,email"`
	Phone          string               `bson:"phone" json:"phone" validate:"required"`
	ServiceHistory []primitive.ObjectID `bson:"service_history" json:"service_history"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
}

// ClientUpdate carries the fields of a partial client update.
type ClientUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}
