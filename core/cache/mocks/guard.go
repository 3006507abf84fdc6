package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Guard is a mock implementation of cache.Guard
type Guard struct {
	mock.Mock
}

func (m *Guard) Acquire(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *Guard) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
