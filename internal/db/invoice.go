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

// InvoiceCollection defines the interface for invoice record operations.
type InvoiceCollection interface {
	InsertInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error)
	FindInvoices(ctx context.Context, filter bson.M) ([]models.Invoice, error)
	FindInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, upd models.InvoiceUpdate) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// MongoInvoiceCollection implements InvoiceCollection for MongoDB
type MongoInvoiceCollection struct {
	Collection *mongo.Collection
}

// InsertInvoice inserts a new invoice and returns the stored record.
func (c *MongoInvoiceCollection) InsertInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	if invoice.ID.IsZero() {
		invoice.ID = primitive.NewObjectID()
	}
	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindInvoices finds invoices with optional filtering
func (c *MongoInvoiceCollection) FindInvoices(ctx context.Context, filter bson.M) ([]models.Invoice, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	invoices := []models.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindInvoiceByID finds an invoice by its ID
func (c *MongoInvoiceCollection) FindInvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var invoice models.Invoice
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&invoice)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice merges the supplied fields into an existing invoice and
// returns the post-update record.
func (c *MongoInvoiceCollection) UpdateInvoice(ctx context.Context, id string, upd models.InvoiceUpdate) (*models.Invoice, error) {
	set := bson.M{}
	if upd.Client != nil {
		set["client"] = *upd.Client
	}
	if upd.Workshop != nil {
		set["workshop"] = *upd.Workshop
	}
	if upd.Total != nil {
		set["total"] = *upd.Total
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.PaymentStatus != nil {
		set["payment_status"] = *upd.PaymentStatus
	}
	if len(set) == 0 {
		return c.FindInvoiceByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var invoice models.Invoice
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&invoice)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice deletes an invoice by its ID
func (c *MongoInvoiceCollection) DeleteInvoice(ctx context.Context, id string) error {
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
