package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Transitions are not constrained by the backend.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
)

// Appointment represents a scheduled service visit. All references are
// stored as bare identifiers; resolution happens in the repository layer.
type Appointment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Client       primitive.ObjectID `bson:"client" json:"client" validate:"required"`
	Workshop     primitive.ObjectID `bson:"workshop" json:"workshop" validate:"required"`
	Service      primitive.ObjectID `bson:"service" json:"service" validate:"required"`
	Mechanic     primitive.ObjectID `bson:"mechanic" json:"mechanic" validate:"required"`
	Date         time.Time          `bson:"date" json:"date" validate:"required"`
	Status       AppointmentStatus  `bson:"status" json:"status" validate:"required,oneof=pending confirmed completed canceled"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ReminderSent bool               `bson:"reminder_sent,omitempty" json:"reminder_sent,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// AppointmentUpdate carries the fields of a partial appointment update.
type AppointmentUpdate struct {
	Client       *primitive.ObjectID `json:"client,omitempty"`
	Workshop     *primitive.ObjectID `json:"workshop,omitempty"`
	Service      *primitive.ObjectID `json:"service,omitempty"`
	Mechanic     *primitive.ObjectID `json:"mechanic,omitempty"`
	Date         *time.Time          `json:"date,omitempty"`
	Status       *AppointmentStatus  `json:"status,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
	ReminderSent *bool               `json:"reminder_sent,omitempty"`
}

// AppointmentDetail is the populated view of an appointment: every stored
// reference resolved into the full referenced record. It is a response
// type only and is never written back to the store.
type AppointmentDetail struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Client       Client             `bson:"client_doc" json:"client"`
	Workshop     Workshop           `bson:"workshop_doc" json:"workshop"`
	Service      Service            `bson:"service_doc" json:"service"`
	Mechanic     User               `bson:"mechanic_doc" json:"mechanic"`
	Date         time.Time          `bson:"date" json:"date"`
	Status       AppointmentStatus  `bson:"status" json:"status"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ReminderSent bool               `bson:"reminder_sent,omitempty" json:"reminder_sent,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidAppointmentStatus checks if an appointment status is valid
func IsValidAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCanceled:
		return true
	default:
		return false
	}
}
