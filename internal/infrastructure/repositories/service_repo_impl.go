package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/infrastructure/models"
)

// ServiceRepository implements service catalog operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create inserts a service. A taken name yields ErrAlreadyExists.
func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	m := &models.Service{
		ID:        service.ID,
		Name:      service.Name,
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	var m models.Service
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toServiceEntity(&m), nil
}

// List returns all services ordered by name
func (r *ServiceRepository) List(ctx context.Context) ([]*entities.Service, error) {
	var ms []models.Service
	if err := GetDB(ctx, r.db).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Service, 0, len(ms))
	for i := range ms {
		out = append(out, toServiceEntity(&ms[i]))
	}
	return out, nil
}

// Rename changes a service name
func (r *ServiceRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := GetDB(ctx, r.db).Model(&models.Service{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       name,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the number of services
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&models.Service{}).Count(&total).Error
	return total, err
}

func toServiceEntity(m *models.Service) *entities.Service {
	return &entities.Service{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
