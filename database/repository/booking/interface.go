package bookingRepo

import (
	"context"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository keeps a local record of calendar bookings. Availability
// is always decided against the live calendar, never against this copy.
type BookingRepository interface {
	Create(ctx context.Context, b models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListUpcoming(ctx context.Context, limit int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("atelier")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
