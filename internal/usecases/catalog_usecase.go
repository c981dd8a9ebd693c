package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/domain/repositories"
	"fundilink.backend/pkg/utils"
)

// CatalogUsecase manages the services and locations fundis apply against
type CatalogUsecase struct {
	serviceRepo  repositories.ServiceRepository
	locationRepo repositories.LocationRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(serviceRepo repositories.ServiceRepository, locationRepo repositories.LocationRepository) *CatalogUsecase {
	return &CatalogUsecase{
		serviceRepo:  serviceRepo,
		locationRepo: locationRepo,
	}
}

// CreateService adds a service with a unique name
func (u *CatalogUsecase) CreateService(ctx context.Context, input *entities.CatalogNameInput) (*entities.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest(MsgNameRequired)
	}

	now := time.Now()
	service := &entities.Service{ID: utils.NewID(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := u.serviceRepo.Create(ctx, service); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(MsgServiceExists)
		}
		return nil, domainerrors.InternalError(err)
	}
	return service, nil
}

// ListServices returns all services ordered by name
func (u *CatalogUsecase) ListServices(ctx context.Context) ([]*entities.Service, error) {
	services, err := u.serviceRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if services == nil {
		services = []*entities.Service{}
	}
	return services, nil
}

// GetService gets a service by ID
func (u *CatalogUsecase) GetService(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	service, err := u.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgServiceMissing)
		}
		return nil, domainerrors.InternalError(err)
	}
	return service, nil
}

// RenameService changes a service name, keeping names unique
func (u *CatalogUsecase) RenameService(ctx context.Context, id uuid.UUID, input *entities.CatalogNameInput) (*entities.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest(MsgNameRequired)
	}

	if err := u.serviceRepo.Rename(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			return nil, domainerrors.NotFound(MsgServiceMissing)
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			return nil, domainerrors.Conflict(MsgServiceExists)
		default:
			return nil, domainerrors.InternalError(err)
		}
	}
	return u.GetService(ctx, id)
}

// CreateLocation adds a location with a unique name
func (u *CatalogUsecase) CreateLocation(ctx context.Context, input *entities.CatalogNameInput) (*entities.Location, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest(MsgNameRequired)
	}

	now := time.Now()
	location := &entities.Location{ID: utils.NewID(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := u.locationRepo.Create(ctx, location); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(MsgLocationExists)
		}
		return nil, domainerrors.InternalError(err)
	}
	return location, nil
}

// ListLocations returns all locations ordered by name
func (u *CatalogUsecase) ListLocations(ctx context.Context) ([]*entities.Location, error) {
	locations, err := u.locationRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if locations == nil {
		locations = []*entities.Location{}
	}
	return locations, nil
}

// GetLocation gets a location by ID
func (u *CatalogUsecase) GetLocation(ctx context.Context, id uuid.UUID) (*entities.Location, error) {
	location, err := u.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgLocationMissing)
		}
		return nil, domainerrors.InternalError(err)
	}
	return location, nil
}
