package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction represents a financial movement booked against a workshop.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Workshop    primitive.ObjectID `bson:"workshop" json:"workshop" validate:"required"`
	Type        TransactionType    `bson:"type" json:"type" validate:"required,oneof=income expense"`
	Amount      float64            `bson:"amount" json:"amount" validate:"gte=0"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// TransactionUpdate carries the fields of a partial transaction update.
type TransactionUpdate struct {
	Workshop    *primitive.ObjectID `json:"workshop,omitempty"`
	Type        *TransactionType    `json:"type,omitempty"`
	Amount      *float64            `json:"amount,omitempty"`
	Date        *time.Time          `json:"date,omitempty"`
	Description *string             `json:"description,omitempty"`
}
