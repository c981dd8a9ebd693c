package repositories

import (
	"context"

	"github.com/google/uuid"

	"fundilink.backend/internal/domain/entities"
)

// ServiceRepository defines service catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	List(ctx context.Context) ([]*entities.Service, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Count(ctx context.Context) (int64, error)
}

// LocationRepository defines location catalog operations
type LocationRepository interface {
	Create(ctx context.Context, location *entities.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Location, error)
	List(ctx context.Context) ([]*entities.Location, error)
	Count(ctx context.Context) (int64, error)
}
