package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fundilink.backend/internal/domain/entities"
	"fundilink.backend/pkg/utils"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	args := m.Called(ctx)
	return args.Get(0).(context.Context)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateVerification(ctx context.Context, id uuid.UUID, verification string) error {
	return m.Called(ctx, id, verification).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, pagination)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Service), args.Error(1)
}

func (m *MockServiceRepository) List(ctx context.Context) ([]*entities.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

func (m *MockServiceRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockServiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *entities.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Location), args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context) ([]*entities.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Location), args.Error(1)
}

func (m *MockLocationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock FundiRepository
type MockFundiRepository struct {
	mock.Mock
}

func (m *MockFundiRepository) Create(ctx context.Context, application *entities.FundiApplication) error {
	return m.Called(ctx, application).Error(0)
}

func (m *MockFundiRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FundiApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FundiApplication), args.Error(1)
}

func (m *MockFundiRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FundiApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FundiApplication), args.Error(1)
}

func (m *MockFundiRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFundiRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockFundiRepository) ListWithRelations(ctx context.Context, status *entities.VerificationStatus) ([]*entities.FundiWithRelations, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FundiWithRelations), args.Error(1)
}

func (m *MockFundiRepository) CountByStatus(ctx context.Context) (map[entities.VerificationStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.VerificationStatus]int64), args.Error(1)
}
