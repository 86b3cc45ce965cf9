package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockStorageService is a testify mock of storage.StorageService.
type MockStorageService struct {
	mock.Mock
}

func NewMockStorageService(t mock.TestingT) *MockStorageService {
	m := &MockStorageService{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockStorageService) Upload(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	args := m.Called(ctx, objectPath, r)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *MockStorageService) Owns(url string) bool {
	return m.Called(url).Bool(0)
}
