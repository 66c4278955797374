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

// SupplierCollection defines the interface for supplier record operations.
type SupplierCollection interface {
	InsertSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error)
	FindSuppliers(ctx context.Context, filter bson.M) ([]models.Supplier, error)
	FindSupplierByID(ctx context.Context, id string) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, upd models.SupplierUpdate) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

// MongoSupplierCollection implements SupplierCollection for MongoDB
type MongoSupplierCollection struct {
	Collection *mongo.Collection
}

// InsertSupplier inserts a new supplier and returns the stored record.
func (c *MongoSupplierCollection) InsertSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error) {
	if supplier.ID.IsZero() {
		supplier.ID = primitive.NewObjectID()
	}
	if supplier.SuppliedProducts == nil {
		supplier.SuppliedProducts = []primitive.ObjectID{}
	}
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindSuppliers finds suppliers with optional filtering
func (c *MongoSupplierCollection) FindSuppliers(ctx context.Context, filter bson.M) ([]models.Supplier, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suppliers := []models.Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// FindSupplierByID finds a supplier by its ID
func (c *MongoSupplierCollection) FindSupplierByID(ctx context.Context, id string) (*models.Supplier, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var supplier models.Supplier
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// UpdateSupplier merges the supplied fields into an existing supplier and
// returns the post-update record.
func (c *MongoSupplierCollection) UpdateSupplier(ctx context.Context, id string, upd models.SupplierUpdate) (*models.Supplier, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Contact != nil {
		set["contact"] = *upd.Contact
	}
	if upd.SuppliedProducts != nil {
		set["supplied_products"] = *upd.SuppliedProducts
	}
	if upd.CommercialTerms != nil {
		set["commercial_terms"] = *upd.CommercialTerms
	}
	if len(set) == 0 {
		return c.FindSupplierByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var supplier models.Supplier
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// DeleteSupplier deletes a supplier by its ID
func (c *MongoSupplierCollection) DeleteSupplier(ctx context.Context, id string) error {
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
