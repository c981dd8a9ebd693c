package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/infrastructure/models"
)

// LocationRepository implements location catalog operations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create inserts a location. A taken name yields ErrAlreadyExists.
func (r *LocationRepository) Create(ctx context.Context, location *entities.Location) error {
	m := &models.Location{
		ID:        location.ID,
		Name:      location.Name,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Location, error) {
	var m models.Location
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toLocationEntity(&m), nil
}

// List returns all locations ordered by name
func (r *LocationRepository) List(ctx context.Context) ([]*entities.Location, error) {
	var ms []models.Location
	if err := GetDB(ctx, r.db).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Location, 0, len(ms))
	for i := range ms {
		out = append(out, toLocationEntity(&ms[i]))
	}
	return out, nil
}

// Count returns the number of locations
func (r *LocationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&models.Location{}).Count(&total).Error
	return total, err
}

func toLocationEntity(m *models.Location) *entities.Location {
	if m == nil {
		return nil
	}
	return &entities.Location{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
