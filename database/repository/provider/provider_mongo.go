package providerRepo

import (
	"context"
	"errors"
	"time"

	"weddingconsole/database/repository"
	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	store *repository.Store
}

// NewMongoProviderRepo creates the repository and ensures its indexes.
func NewMongoProviderRepo(ctx context.Context, db *mongo.Database) (ProviderRepository, error) {
	repo := &MongoProviderRepo{
		store: repository.NewStore(db.Collection(models.CollectionServiceProviders)),
	}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoProviderRepo) List(ctx context.Context, filter models.Filter) ([]models.ServiceProvider, error) {
	providers := []models.ServiceProvider{}
	if err := r.store.Find(ctx, filter.ToBSON(), &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.ServiceProvider, error) {
	var provider models.ServiceProvider
	if err := r.store.FindByID(ctx, id, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetByEmail(ctx context.Context, email string) (*models.ServiceProvider, error) {
	var provider models.ServiceProvider
	if err := r.store.FindOne(ctx, bson.M{"email": email}, &provider); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *MongoProviderRepo) Create(ctx context.Context, provider *models.ServiceProvider) error {
	now := time.Now().UTC()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	return r.store.Insert(ctx, provider)
}

func (r *MongoProviderRepo) Update(ctx context.Context, id string, fields bson.M) error {
	return r.store.SetFields(ctx, id, fields)
}

func (r *MongoProviderRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, id)
}
