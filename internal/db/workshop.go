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

// WorkshopCollection defines the interface for workshop record operations.
type WorkshopCollection interface {
	InsertWorkshop(ctx context.Context, workshop models.Workshop) (*models.Workshop, error)
	FindWorkshops(ctx context.Context, filter bson.M) ([]models.Workshop, error)
	FindWorkshopByID(ctx context.Context, id string) (*models.Workshop, error)
	UpdateWorkshop(ctx context.Context, id string, upd models.WorkshopUpdate) (*models.Workshop, error)
	DeleteWorkshop(ctx context.Context, id string) error
}

// MongoWorkshopCollection implements WorkshopCollection for MongoDB
type MongoWorkshopCollection struct {
	Collection *mongo.Collection
}

// InsertWorkshop inserts a new workshop and returns the stored record.
// The owner reference may be nil during bootstrap.
func (c *MongoWorkshopCollection) InsertWorkshop(ctx context.Context, workshop models.Workshop) (*models.Workshop, error) {
	if workshop.ID.IsZero() {
		workshop.ID = primitive.NewObjectID()
	}
	now := time.Now()
	workshop.CreatedAt = now
	workshop.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, workshop); err != nil {
		return nil, err
	}
	return &workshop, nil
}

// FindWorkshops finds workshops with optional filtering
func (c *MongoWorkshopCollection) FindWorkshops(ctx context.Context, filter bson.M) ([]models.Workshop, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workshops := []models.Workshop{}
	if err := cursor.All(ctx, &workshops); err != nil {
		return nil, err
	}
	return workshops, nil
}

// FindWorkshopByID finds a workshop by its ID
func (c *MongoWorkshopCollection) FindWorkshopByID(ctx context.Context, id string) (*models.Workshop, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var workshop models.Workshop
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&workshop)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &workshop, nil
}

// UpdateWorkshop merges the supplied fields into an existing workshop and
// returns the post-update record.
func (c *MongoWorkshopCollection) UpdateWorkshop(ctx context.Context, id string, upd models.WorkshopUpdate) (*models.Workshop, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Contact != nil {
		set["contact"] = *upd.Contact
	}
	if upd.Owner != nil {
		set["owner"] = *upd.Owner
	}
	if len(set) == 0 {
		return c.FindWorkshopByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var workshop models.Workshop
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&workshop)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &workshop, nil
}

// DeleteWorkshop deletes a workshop by its ID
func (c *MongoWorkshopCollection) DeleteWorkshop(ctx context.Context, id string) error {
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
