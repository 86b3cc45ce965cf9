package mocks

import (
	"context"

	"weddingconsole/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockHallManagerRepository is a testify mock of hallRepo.HallManagerRepository.
type MockHallManagerRepository struct {
	mock.Mock
}

func NewMockHallManagerRepository(t mock.TestingT) *MockHallManagerRepository {
	m := &MockHallManagerRepository{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockHallManagerRepository) List(ctx context.Context, filter models.Filter) ([]models.HallManager, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]models.HallManager)
	return out, args.Error(1)
}

func (m *MockHallManagerRepository) GetByID(ctx context.Context, id string) (*models.HallManager, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.HallManager)
	return out, args.Error(1)
}

func (m *MockHallManagerRepository) GetByEmail(ctx context.Context, email string) (*models.HallManager, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*models.HallManager)
	return out, args.Error(1)
}

func (m *MockHallManagerRepository) Create(ctx context.Context, manager *models.HallManager) error {
	return m.Called(ctx, manager).Error(0)
}

func (m *MockHallManagerRepository) Update(ctx context.Context, id string, fields bson.M) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockHallManagerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
