package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service represents a repair service offered by a workshop. Duration is
// in minutes.
type Service struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name              string              `bson:"name" json:"name" validate:"required"`
	Price             float64             `bson:"price" json:"price" validate:"gte=0"`
	EstimatedDuration int                 `bson:"estimated_duration" json:"estimated_duration" validate:"gte=0"`
	Workshop          *primitive.ObjectID `bson:"workshop,omitempty" json:"workshop,omitempty"`
	CreatedAt         time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `bson:"updated_at" json:"updated_at"`
}

// ServiceUpdate carries the fields of a partial service update.
type ServiceUpdate struct {
	Name              *string             `json:"name,omitempty"`
	Price             *float64            `json:"price,omitempty"`
	EstimatedDuration *int                `json:"estimated_duration,omitempty"`
	Workshop          *primitive.ObjectID `json:"workshop,omitempty"`
}
