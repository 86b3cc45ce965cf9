package bookingRepo

import (
	"context"

	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for the bookings collection.
type BookingRepository interface {
	List(ctx context.Context, filter models.Filter) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}
