package bookingRepo

import (
	"context"

	"weddingconsole/database/repository"
	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	store *repository.Store
}

// NewMongoBookingRepo creates the repository and ensures its indexes.
func NewMongoBookingRepo(ctx context.Context, db *mongo.Database) (BookingRepository, error) {
	repo := &MongoBookingRepo{
		store: repository.NewStore(db.Collection(models.CollectionBookings)),
	}
	err := repo.store.EnsureIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "hallManagerId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "hallId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "serviceProviderId", Value: 1}}},
		{Keys: bson.D{{Key: "trackingId", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, filter models.Filter) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := r.store.Find(ctx, filter.ToBSON(), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.store.FindByID(ctx, id, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return r.store.Insert(ctx, booking)
}

func (r *MongoBookingRepo) Update(ctx context.Context, id string, fields bson.M) error {
	return r.store.SetFields(ctx, id, fields)
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, id)
}
