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

// StockCollection defines the interface for stock record operations.
type StockCollection interface {
	InsertStock(ctx context.Context, stock models.Stock) (*models.Stock, error)
	FindStocks(ctx context.Context, filter bson.M) ([]models.Stock, error)
	FindStockByID(ctx context.Context, id string) (*models.Stock, error)
	UpdateStock(ctx context.Context, id string, upd models.StockUpdate) (*models.Stock, error)
	DeleteStock(ctx context.Context, id string) error
}

// MongoStockCollection implements StockCollection for MongoDB
type MongoStockCollection struct {
	Collection *mongo.Collection
}

// InsertStock inserts a new stock entry and returns the stored record.
// Status defaults to "available" when the caller leaves it empty.
func (c *MongoStockCollection) InsertStock(ctx context.Context, stock models.Stock) (*models.Stock, error) {
	if stock.ID.IsZero() {
		stock.ID = primitive.NewObjectID()
	}
	if stock.Status == "" {
		stock.Status = models.StockStatusAvailable
	}
	now := time.Now()
	if stock.LastUpdated.IsZero() {
		stock.LastUpdated = now
	}
	stock.CreatedAt = now
	stock.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

// FindStocks finds stock entries with optional filtering
func (c *MongoStockCollection) FindStocks(ctx context.Context, filter bson.M) ([]models.Stock, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stocks := []models.Stock{}
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindStockByID finds a stock entry by its ID
func (c *MongoStockCollection) FindStockByID(ctx context.Context, id string) (*models.Stock, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var stock models.Stock
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&stock)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// UpdateStock merges the supplied fields into an existing stock entry and
// returns the post-update record. Quantity changes refresh last_updated.
func (c *MongoStockCollection) UpdateStock(ctx context.Context, id string, upd models.StockUpdate) (*models.Stock, error) {
	set := bson.M{}
	if upd.Workshop != nil {
		set["workshop"] = *upd.Workshop
	}
	if upd.Product != nil {
		set["product"] = *upd.Product
	}
	if upd.Supplier != nil {
		set["supplier"] = *upd.Supplier
	}
	if upd.Quantity != nil {
		set["quantity"] = *upd.Quantity
		set["last_updated"] = time.Now()
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if len(set) == 0 {
		return c.FindStockByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var stock models.Stock
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&stock)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// DeleteStock deletes a stock entry by its ID
func (c *MongoStockCollection) DeleteStock(ctx context.Context, id string) error {
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
