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

// ClientCollection defines the interface for client record operations.
type ClientCollection interface {
	InsertClient(ctx context.Context, client models.Client) (*models.Client, error)
	FindClients(ctx context.Context, filter bson.M) ([]models.Client, error)
	FindClientByID(ctx context.Context, id string) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, upd models.ClientUpdate) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
	AppendServiceHistory(ctx context.Context, id primitive.ObjectID, appointmentID primitive.ObjectID) error
}

// MongoClientCollection implements ClientCollection for MongoDB
type MongoClientCollection struct {
	Collection *mongo.Collection
}

// InsertClient inserts a new client and returns the stored record.
func (c *MongoClientCollection) InsertClient(ctx context.Context, client models.Client) (*models.Client, error) {
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	if client.ServiceHistory == nil {
		client.ServiceHistory = []primitive.ObjectID{}
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, client); err != nil {
		return nil, err
	}
	return &client, nil
}

// FindClients finds clients with optional filtering
func (c *MongoClientCollection) FindClients(ctx context.Context, filter bson.M) ([]models.Client, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// FindClientByID finds a client by its ID
func (c *MongoClientCollection) FindClientByID(ctx context.Context, id string) (*models.Client, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var client models.Client
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient merges the supplied fields into an existing client and
// returns the post-update record.
func (c *MongoClientCollection) UpdateClient(ctx context.Context, id string, upd models.ClientUpdate) (*models.Client, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if len(set) == 0 {
		return c.FindClientByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var client models.Client
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient deletes a client by its ID
func (c *MongoClientCollection) DeleteClient(ctx context.Context, id string) error {
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

// AppendServiceHistory appends an appointment reference to the client's
// service history. History is append-only.
func (c *MongoClientCollection) AppendServiceHistory(ctx context.Context, id primitive.ObjectID, appointmentID primitive.ObjectID) error {
	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"service_history": appointmentID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
