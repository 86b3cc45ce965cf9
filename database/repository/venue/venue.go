package venueRepo

import (
	"context"

	"weddingconsole/database/repository"
	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
)

// VenueRepository resolves a bookable hall from either the hallManagers collection
// or the legacy weddingHalls collection.
type VenueRepository interface {
	Get(ctx context.Context, ref models.VenueRef) (*models.Venue, error)
}

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	managers *repository.Store
	halls    *repository.Store
}

// NewMongoVenueRepo creates a venue repository over db.
func NewMongoVenueRepo(db *mongo.Database) VenueRepository {
	return &MongoVenueRepo{
		managers: repository.NewStore(db.Collection(models.CollectionHallManagers)),
		halls:    repository.NewStore(db.Collection(models.CollectionWeddingHalls)),
	}
}

// Get loads the venue. Field names of both collections are accepted; the hall-manager
// spelling (hallName, hallCapacity, ...) wins when both are present.
func (r *MongoVenueRepo) Get(ctx context.Context, ref models.VenueRef) (*models.Venue, error) {
	store := r.halls
	if ref.IsManager {
		store = r.managers
	}

	var doc bson.Raw
	if err := store.FindByID(ctx, ref.ID, &doc); err != nil {
		return nil, err
	}
	return venueFromDocument(ref.ID, doc), nil
}

func venueFromDocument(id string, doc bson.Raw) *models.Venue {
	v := &models.Venue{
		ID:          id,
		Name:        firstString(doc, "hallName", "name"),
		Description: firstString(doc, "hallDescription", "description"),
		Address:     firstString(doc, "hallAddress", "address"),
		Capacity:    firstInt(doc, "hallCapacity", "capacity"),
	}
	v.Price = firstMoney(doc, "hallPrice", "price")

	if images, ok := doc.Lookup("images").ArrayOK(); ok {
		values, _ := images.Values()
		for _, val := range values {
			if s, ok := val.StringValueOK(); ok {
				v.Images = append(v.Images, s)
			}
		}
	}
	return v
}

func firstString(doc bson.Raw, keys ...string) string {
	for _, k := range keys {
		if s, ok := doc.Lookup(k).StringValueOK(); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstInt(doc bson.Raw, keys ...string) int {
	for _, k := range keys {
		val := doc.Lookup(k)
		switch val.Type {
		case bsontype.Int32:
			if n := int(val.Int32()); n != 0 {
				return n
			}
		case bsontype.Int64:
			if n := int(val.Int64()); n != 0 {
				return n
			}
		case bsontype.Double:
			if n := int(val.Double()); n != 0 {
				return n
			}
		}
	}
	return 0
}

func firstMoney(doc bson.Raw, keys ...string) models.Money {
	for _, k := range keys {
		val := doc.Lookup(k)
		if val.Type == 0 {
			continue
		}
		var m models.Money
		if err := m.UnmarshalBSONValue(val.Type, val.Value); err == nil && !m.IsZero() {
			return m
		}
	}
	return models.Money{}
}
