package mocks

import (
	"context"

	"weddingconsole/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockBookingRepository is a testify mock of bookingRepo.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func NewMockBookingRepository(t mock.TestingT) *MockBookingRepository {
	m := &MockBookingRepository{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockBookingRepository) List(ctx context.Context, filter models.Filter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]models.Booking)
	return out, args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Booking)
	return out, args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, id string, fields bson.M) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
