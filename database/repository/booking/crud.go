package bookingRepo

import (
	"context"
	"errors"
	"time"

	"atelier/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a booking record does not exist.
var ErrNotFound = errors.New("booking not found")

// Create inserts a booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// GetByID returns a booking record by ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListUpcoming returns future bookings in start order.
func (r *mongoBookingRepo) ListUpcoming(ctx context.Context, limit int64) ([]models.Booking, error) {
	filter := bson.M{"start": bson.M{"$gte": time.Now()}}
	opts := options.Find().SetSort(bson.M{"start": 1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
