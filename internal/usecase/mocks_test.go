package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/midpoint-service/internal/domain"
)

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) ForwardGeocode(ctx context.Context, placeName string) (domain.Coordinate, domain.PlaceElement, error) {
	args := m.Called(ctx, placeName)
	var element domain.PlaceElement
	if args.Get(1) != nil {
		element = args.Get(1).(domain.PlaceElement)
	}
	return args.Get(0).(domain.Coordinate), element, args.Error(2)
}

func (m *MockGeocodingRepository) ReverseGeocode(ctx context.Context, point domain.Coordinate) (domain.PlaceElement, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PlaceElement), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetPlace(ctx context.Context, placeName string) (*domain.CachedPlace, error) {
	args := m.Called(ctx, placeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedPlace), args.Error(1)
}

func (m *MockCacheRepository) SetPlace(ctx context.Context, placeName string, place *domain.CachedPlace, ttl time.Duration) error {
	args := m.Called(ctx, placeName, place, ttl)
	return args.Error(0)
}

// MockHistoryRepository is a mock of HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, record *domain.ResultRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) List(ctx context.Context, limit int) ([]*domain.ResultRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResultRecord), args.Error(1)
}

func (m *MockHistoryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ResultRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResultRecord), args.Error(1)
}
