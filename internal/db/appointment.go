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

// AppointmentCollection defines the interface for appointment operations.
// Detail variants resolve the client/workshop/service/mechanic references
// into full records.
type AppointmentCollection interface {
	InsertAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error)
	FindAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error)
	FindAppointmentsDetailed(ctx context.Context) ([]models.AppointmentDetail, error)
	FindAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	FindAppointmentDetailByID(ctx context.Context, id string) (*models.AppointmentDetail, error)
	UpdateAppointment(ctx context.Context, id string, upd models.AppointmentUpdate) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, id primitive.ObjectID) error
}

// MongoAppointmentCollection implements AppointmentCollection for MongoDB
type MongoAppointmentCollection struct {
	Collection *mongo.Collection
}

// InsertAppointment inserts a new appointment and returns the stored
// record. Status is whatever the caller supplied; the store assigns no
// default.
func (c *MongoAppointmentCollection) InsertAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error) {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindAppointments finds appointments with optional filtering, references
// left unresolved.
func (c *MongoAppointmentCollection) FindAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// detailPipeline resolves the appointment references into embedded
// documents. Dangling references produce zero-valued embeds rather than
// dropping the appointment. The mechanic's password hash is stripped at
// query level.
func detailPipeline(match bson.M) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	lookups := []struct {
		from  string
		local string
		as    string
	}{
		{"clients", "client", "client_doc"},
		{"workshops", "workshop", "workshop_doc"},
		{"services", "service", "service_doc"},
		{"users", "mechanic", "mechanic_doc"},
	}
	for _, l := range lookups {
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         l.from,
				"localField":   l.local,
				"foreignField": "_id",
				"as":           l.as,
			}}},
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + l.as,
				"preserveNullAndEmptyArrays": true,
			}}},
		)
	}
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"mechanic_doc.password": 0,
	}}})
	return pipeline
}

// FindAppointmentsDetailed returns all appointments with their references
// resolved into full records.
func (c *MongoAppointmentCollection) FindAppointmentsDetailed(ctx context.Context) ([]models.AppointmentDetail, error) {
	cursor, err := c.Collection.Aggregate(ctx, detailPipeline(nil))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []models.AppointmentDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// FindAppointmentByID finds an appointment by its ID
func (c *MongoAppointmentCollection) FindAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var appointment models.Appointment
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&appointment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindAppointmentDetailByID finds an appointment by its ID with resolved
// references.
func (c *MongoAppointmentCollection) FindAppointmentDetailByID(ctx context.Context, id string) (*models.AppointmentDetail, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	cursor, err := c.Collection.Aggregate(ctx, detailPipeline(bson.M{"_id": oid}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []models.AppointmentDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

// UpdateAppointment merges the supplied fields into an existing
// appointment and returns the post-update record.
func (c *MongoAppointmentCollection) UpdateAppointment(ctx context.Context, id string, upd models.AppointmentUpdate) (*models.Appointment, error) {
	set := bson.M{}
	if upd.Client != nil {
		set["client"] = *upd.Client
	}
	if upd.Workshop != nil {
		set["workshop"] = *upd.Workshop
	}
	if upd.Service != nil {
		set["service"] = *upd.Service
	}
	if upd.Mechanic != nil {
		set["mechanic"] = *upd.Mechanic
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.ReminderSent != nil {
		set["reminder_sent"] = *upd.ReminderSent
	}
	if len(set) == 0 {
		return c.FindAppointmentByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var appointment models.Appointment
	err = c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&appointment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// DeleteAppointment deletes an appointment by its ID
func (c *MongoAppointmentCollection) DeleteAppointment(ctx context.Context, id string) error {
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

// FindDueReminders returns pending or confirmed appointments falling in
// the [from, to) window whose reminder has not been sent yet.
func (c *MongoAppointmentCollection) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"date":          bson.M{"$gte": from, "$lt": to},
		"status":        bson.M{"$in": []models.AppointmentStatus{models.AppointmentPending, models.AppointmentConfirmed}},
		"reminder_sent": bson.M{"$ne": true},
	}
	return c.FindAppointments(ctx, filter)
}

// MarkReminderSent flags an appointment's reminder as delivered.
func (c *MongoAppointmentCollection) MarkReminderSent(ctx context.Context, id primitive.ObjectID) error {
	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"reminder_sent": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
