package queries_test

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type MockLocationStore struct {
	mock.Mock
}

func (m *MockLocationStore) Upsert(ctx context.Context, location *restaurant.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationStore) Get(ctx context.Context, restaurantID kernel.UUID) (*restaurant.Location, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Location), args.Error(1)
}

func (m *MockLocationStore) Delete(ctx context.Context, restaurantID kernel.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockLocationStore) Missing(ctx context.Context, restaurantIDs []kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, restaurantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockQREncoder struct {
	mock.Mock
}

func (m *MockQREncoder) EncodePNG(payload string) ([]byte, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
