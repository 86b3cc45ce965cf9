package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockImageCleaner is a testify mock of tasks.ImageCleaner.
type MockImageCleaner struct {
	mock.Mock
}

func NewMockImageCleaner(t mock.TestingT) *MockImageCleaner {
	m := &MockImageCleaner{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockImageCleaner) Schedule(ctx context.Context, urls []string) {
	m.Called(ctx, urls)
}
