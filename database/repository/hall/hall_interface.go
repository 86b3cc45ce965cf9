package hallRepo

import (
	"context"

	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
)

// HallManagerRepository defines data access for the hallManagers collection.
type HallManagerRepository interface {
	List(ctx context.Context, filter models.Filter) ([]models.HallManager, error)
	GetByID(ctx context.Context, id string) (*models.HallManager, error)
	// GetByEmail returns nil when no hall manager uses email.
	GetByEmail(ctx context.Context, email string) (*models.HallManager, error)
	Create(ctx context.Context, manager *models.HallManager) error
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}
