package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"trainboard/internal/model"
	"trainboard/internal/repository"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	args := m.Called(ctx, id, columns)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStationRepository is a mock implementation of StationRepository.
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) Create(ctx context.Context, station *model.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Station), args.Error(1)
}

func (m *MockStationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Station), args.Error(1)
}

func (m *MockStationRepository) List(ctx context.Context) ([]model.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Station), args.Error(1)
}

func (m *MockStationRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	args := m.Called(ctx, id, columns)
	return args.Error(0)
}

func (m *MockStationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStationRepository) CountSchedules(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// WithTransaction runs fn against the mock itself.
func (m *MockStationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.StationRepository) error) error {
	m.Called(ctx)
	return fn(ctx, m)
}

// MockTrainRepository is a mock implementation of TrainRepository.
type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) Create(ctx context.Context, train *model.Train) error {
	args := m.Called(ctx, train)
	return args.Error(0)
}

func (m *MockTrainRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Train), args.Error(1)
}

func (m *MockTrainRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Train), args.Error(1)
}

func (m *MockTrainRepository) List(ctx context.Context) ([]model.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Train), args.Error(1)
}

func (m *MockTrainRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	args := m.Called(ctx, id, columns)
	return args.Error(0)
}

func (m *MockTrainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrainRepository) CountSchedules(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// WithTransaction runs fn against the mock itself.
func (m *MockTrainRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.TrainRepository) error) error {
	m.Called(ctx)
	return fn(ctx, m)
}

// MockScheduleRepository is a mock implementation of ScheduleRepository.
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *model.TrainSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TrainSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainSchedule), args.Error(1)
}

func (m *MockScheduleRepository) List(ctx context.Context) ([]model.TrainSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrainSchedule), args.Error(1)
}

func (m *MockScheduleRepository) FindAll(ctx context.Context, filter repository.ScheduleFilter) ([]model.TrainSchedule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrainSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	args := m.Called(ctx, id, columns)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	args := m.Called(ctx, tokenID)
	return args.Bool(0)
}

// memoryCache is an in-process cache.Store.
type memoryCache map[string][]byte

func (c memoryCache) Get(_ context.Context, key string) ([]byte, error) { return c[key], nil }

func (c memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c[key] = value
	return nil
}

func (c memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c, k)
	}
	return nil
}
