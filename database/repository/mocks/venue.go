package mocks

import (
	"context"
	"time"

	lockRepo "weddingconsole/database/repository/lock"
	"weddingconsole/models"

	"github.com/stretchr/testify/mock"
)

// MockVenueRepository is a testify mock of venueRepo.VenueRepository.
type MockVenueRepository struct {
	mock.Mock
}

func NewMockVenueRepository(t mock.TestingT) *MockVenueRepository {
	m := &MockVenueRepository{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockVenueRepository) Get(ctx context.Context, ref models.VenueRef) (*models.Venue, error) {
	args := m.Called(ctx, ref)
	out, _ := args.Get(0).(*models.Venue)
	return out, args.Error(1)
}

// MockLocker is a testify mock of lockRepo.Locker. A successful Acquire returns
// a release func that records a "Release" call with the same key.
type MockLocker struct {
	mock.Mock
}

func NewMockLocker(t mock.TestingT) *MockLocker {
	m := &MockLocker{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (lockRepo.ReleaseFunc, error) {
	args := m.Called(ctx, key, ttl)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		return m.MethodCalled("Release", ctx, key).Error(0)
	}, nil
}
