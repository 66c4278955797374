package db

import (
	"context"
	"errors"
	"time"

	"github.com/tallermanager/workshop-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionCollection defines the interface for financial transaction
// record operations.
type TransactionCollection interface {
	InsertTransaction(ctx context.Context, transaction models.Transaction) (*models.Transaction, error)
	FindTransactions(ctx context.Context, filter bson.M) ([]models.Transaction, error)
	FindTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// MongoTransactionCollection implements TransactionCollection for MongoDB
type MongoTransactionCollection struct {
	Collection *mongo.Collection
}

// InsertTransaction inserts a new transaction and returns the stored record.
func (c *MongoTransactionCollection) InsertTransaction(ctx context.Context, transaction models.Transaction) (*models.Transaction, error) {
	if transaction.ID.IsZero() {
		transaction.ID = primitive.NewObjectID()
	}
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// FindTransactions finds transactions with optional filtering
func (c *MongoTransactionCollection) FindTransactions(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindTransactionByID finds a transaction by its ID
func (c *MongoTransactionCollection) FindTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var transaction models.Transaction
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction merges the supplied fields into an existing
// transaction and returns the post-update record.
func (c *MongoTransactionCollection) UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error) {
	set := bson.M{}
	if upd.Workshop != nil {
		set["workshop"] = *upd.Workshop
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Amount != nil {
		set["amount"] = *upd.Amount
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if len(set) == 0 {
		return c.FindTransactionByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var transaction models.Transaction
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction by its ID
func (c *MongoTransactionCollection) DeleteTransaction(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
