package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus represents the payment state of an invoice.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentCanceled PaymentStatus = "canceled"
)

// Invoice represents a bill issued to a client by a workshop.
type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Client        primitive.ObjectID `bson:"client" json:"client" validate:"required"`
	Workshop      primitive.ObjectID `bson:"workshop" json:"workshop" validate:"required"`
	Total         float64            `bson:"total" json:"total" validate:"gte=0"`
	Date          time.Time          `bson:"date" json:"date" validate:"required"`
	PaymentStatus PaymentStatus      `bson:"payment_status" json:"payment_status" validate:"required,oneof=pending paid canceled"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// InvoiceUpdate carries the fields of a partial invoice update.
type InvoiceUpdate struct {
	Client        *primitive.ObjectID `json:"client,omitempty"`
	Workshop      *primitive.ObjectID `json:"workshop,omitempty"`
	Total         *float64            `json:"total,omitempty"`
	Date          *time.Time          `json:"date,omitempty"`
	PaymentStatus *PaymentStatus      `json:"payment_status,omitempty"`
}
