package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/urbangrow/urbangrow/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockGeocoder mocks the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Reverse(ctx context.Context, coord domain.Coordinate) (*domain.ResolvedLocation, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedLocation), args.Error(1)
}

func (m *MockGeocoder) Forward(ctx context.Context, query string) (*domain.Coordinate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

// MockWeatherFetcher mocks the WeatherFetcher interface
type MockWeatherFetcher struct {
	mock.Mock
}

func (m *MockWeatherFetcher) Current(ctx context.Context, coord domain.Coordinate) (*domain.WeatherReading, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeatherReading), args.Error(1)
}
