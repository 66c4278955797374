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

// ServiceCollection defines the interface for service catalog operations.
type ServiceCollection interface {
	InsertService(ctx context.Context, service models.Service) (*models.Service, error)
	FindServices(ctx context.Context, filter bson.M) ([]models.Service, error)
	FindServiceByID(ctx context.Context, id string) (*models.Service, error)
	UpdateService(ctx context.Context, id string, upd models.ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// MongoServiceCollection implements ServiceCollection for MongoDB
type MongoServiceCollection struct {
	Collection *mongo.Collection
}

// InsertService inserts a new service and returns the stored record.
func (c *MongoServiceCollection) InsertService(ctx context.Context, service models.Service) (*models.Service, error) {
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, service); err != nil {
		return nil, err
	}
	return &service, nil
}

// FindServices finds services with optional filtering
func (c *MongoServiceCollection) FindServices(ctx context.Context, filter bson.M) ([]models.Service, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// FindServiceByID finds a service by its ID
func (c *MongoServiceCollection) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var service models.Service
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService merges the supplied fields into an existing service and
// returns the post-update record.
func (c *MongoServiceCollection) UpdateService(ctx context.Context, id string, upd models.ServiceUpdate) (*models.Service, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.EstimatedDuration != nil {
		set["estimated_duration"] = *upd.EstimatedDuration
	}
	if upd.Workshop != nil {
		set["workshop"] = *upd.Workshop
	}
	if len(set) == 0 {
		return c.FindServiceByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var service models.Service
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService deletes a service by its ID
func (c *MongoServiceCollection) DeleteService(ctx context.Context, id string) error {
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
