package mocks

import (
	"context"

	"weddingconsole/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockProviderRepository is a testify mock of providerRepo.ProviderRepository.
type MockProviderRepository struct {
	mock.Mock
}

func NewMockProviderRepository(t mock.TestingT) *MockProviderRepository {
	m := &MockProviderRepository{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockProviderRepository) List(ctx context.Context, filter models.Filter) ([]models.ServiceProvider, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]models.ServiceProvider)
	return out, args.Error(1)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id string) (*models.ServiceProvider, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.ServiceProvider)
	return out, args.Error(1)
}

func (m *MockProviderRepository) GetByEmail(ctx context.Context, email string) (*models.ServiceProvider, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*models.ServiceProvider)
	return out, args.Error(1)
}

func (m *MockProviderRepository) Create(ctx context.Context, provider *models.ServiceProvider) error {
	return m.Called(ctx, provider).Error(0)
}

func (m *MockProviderRepository) Update(ctx context.Context, id string, fields bson.M) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
