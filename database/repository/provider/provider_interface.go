package providerRepo

import (
	"context"

	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines data access for the serviceProviders collection.
type ProviderRepository interface {
	// List returns providers matching filter, newest first.
	List(ctx context.Context, filter models.Filter) ([]models.ServiceProvider, error)
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.ServiceProvider, error)
	// GetByEmail retrieves a provider by email, or nil if none exists.
	GetByEmail(ctx context.Context, email string) (*models.ServiceProvider, error)
	// Create inserts a new provider record.
	Create(ctx context.Context, provider *models.ServiceProvider) error
	// Update applies a partial update to the provider.
	Update(ctx context.Context, id string, fields bson.M) error
	// Delete removes a provider record by its ID.
	Delete(ctx context.Context, id string) error
}
