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

// ProductCollection defines the interface for product record operations.
type ProductCollection interface {
	InsertProduct(ctx context.Context, product models.Product) (*models.Product, error)
	FindProducts(ctx context.Context, filter bson.M) ([]models.Product, error)
	FindProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, upd models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// MongoProductCollection implements ProductCollection for MongoDB
type MongoProductCollection struct {
	Collection *mongo.Collection
}

// InsertProduct inserts a new product and returns the stored record.
func (c *MongoProductCollection) InsertProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProducts finds products with optional filtering
func (c *MongoProductCollection) FindProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindProductByID finds a product by its ID
func (c *MongoProductCollection) FindProductByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct merges the supplied fields into an existing product and
// returns the post-update record.
func (c *MongoProductCollection) UpdateProduct(ctx context.Context, id string, upd models.ProductUpdate) (*models.Product, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Dimensions != nil {
		set["dimensions"] = *upd.Dimensions
	}
	if upd.Brand != nil {
		set["brand"] = *upd.Brand
	}
	if upd.Compatibility != nil {
		set["compatibility"] = *upd.Compatibility
	}
	if upd.Supplier != nil {
		set["supplier"] = *upd.Supplier
	}
	if upd.PhotoURL != nil {
		set["photo_url"] = *upd.PhotoURL
	}
	if len(set) == 0 {
		return c.FindProductByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product by its ID
func (c *MongoProductCollection) DeleteProduct(ctx context.Context, id string) error {
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
