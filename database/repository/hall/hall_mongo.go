package hallRepo

import (
	"context"
	"errors"
	"time"

	"weddingconsole/database/repository"
	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHallManagerRepo implements HallManagerRepository using MongoDB.
type MongoHallManagerRepo struct {
	store *repository.Store
}

// NewMongoHallManagerRepo creates the repository and ensures its indexes.
func NewMongoHallManagerRepo(ctx context.Context, db *mongo.Database) (HallManagerRepository, error) {
	repo := &MongoHallManagerRepo{
		store: repository.NewStore(db.Collection(models.CollectionHallManagers)),
	}
	err := repo.store.EnsureIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoHallManagerRepo) List(ctx context.Context, filter models.Filter) ([]models.HallManager, error) {
	managers := []models.HallManager{}
	if err := r.store.Find(ctx, filter.ToBSON(), &managers); err != nil {
		return nil, err
	}
	for i := range managers {
		normalize(&managers[i])
	}
	return managers, nil
}

func (r *MongoHallManagerRepo) GetByID(ctx context.Context, id string) (*models.HallManager, error) {
	var manager models.HallManager
	if err := r.store.FindByID(ctx, id, &manager); err != nil {
		return nil, err
	}
	normalize(&manager)
	return &manager, nil
}

func (r *MongoHallManagerRepo) GetByEmail(ctx context.Context, email string) (*models.HallManager, error) {
	var manager models.HallManager
	if err := r.store.FindOne(ctx, bson.M{"email": email}, &manager); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	normalize(&manager)
	return &manager, nil
}

func (r *MongoHallManagerRepo) Create(ctx context.Context, manager *models.HallManager) error {
	now := time.Now().UTC()
	manager.CreatedAt = now
	manager.UpdatedAt = now
	normalize(manager)
	return r.store.Insert(ctx, manager)
}

func (r *MongoHallManagerRepo) Update(ctx context.Context, id string, fields bson.M) error {
	return r.store.SetFields(ctx, id, fields)
}

func (r *MongoHallManagerRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, id)
}

// normalize replaces a missing image list with an empty one.
func normalize(m *models.HallManager) {
	if m.Images == nil {
		m.Images = []string{}
	}
}
