package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/infrastructure/models"
)

// FundiRepository implements fundi application operations
type FundiRepository struct {
	db *gorm.DB
}

// NewFundiRepository creates a new fundi application repository
func NewFundiRepository(db *gorm.DB) *FundiRepository {
	return &FundiRepository{db: db}
}

// Create inserts a new application. A second application for the same user
// hits the unique index on user_id and yields ErrAlreadyExists.
func (r *FundiRepository) Create(ctx context.Context, application *entities.FundiApplication) error {
	m := &models.FundiApplication{
		ID:                 application.ID,
		UserID:             application.UserID,
		ServiceID:          application.ServiceID,
		LocationID:         application.LocationID,
		HourlyRate:         application.HourlyRate,
		Documents:          pq.StringArray(application.Documents),
		VerificationStatus: string(application.Status),
		AppliedAt:          application.AppliedAt,
		ReviewedAt:         application.ReviewedAt,
		CreatedAt:          application.CreatedAt,
		UpdatedAt:          application.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets an application by ID, locking the row when ctx asks for it
func (r *FundiRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FundiApplication, error) {
	var m models.FundiApplication
	db := lockForUpdate(ctx, GetDB(ctx, r.db))
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toFundiEntity(&m), nil
}

// GetByUserID gets the application owned by a user
func (r *FundiRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FundiApplication, error) {
	var m models.FundiApplication
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toFundiEntity(&m), nil
}

// ExistsForUser reports whether the user already applied
func (r *FundiRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.FundiApplication{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus moves an application to status, stamping reviewed_at for terminal states
func (r *FundiRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	now := time.Now()
	updates := map[string]interface{}{
		"verification_status": string(status),
		"updated_at":          now,
	}
	if status.IsTerminal() {
		updates["reviewed_at"] = now
	}

	result := GetDB(ctx, r.db).Model(&models.FundiApplication{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListWithRelations returns applications newest first with user, service and location hydrated
func (r *FundiRepository) ListWithRelations(ctx context.Context, status *entities.VerificationStatus) ([]*entities.FundiWithRelations, error) {
	query := GetDB(ctx, r.db).
		Preload("User").
		Preload("Service").
		Preload("Location")

	if status != nil {
		query = query.Where("verification_status = ?", string(*status))
	}

	var ms []models.FundiApplication
	if err := query.Order("applied_at DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.FundiWithRelations, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		item := &entities.FundiWithRelations{
			FundiApplication: *toFundiEntity(m),
			Location:         toLocationEntity(m.Location),
		}
		if m.User.ID != uuid.Nil {
			item.User = toUserEntity(&m.User)
		}
		if m.Service.ID != uuid.Nil {
			item.Service = toServiceEntity(&m.Service)
		}
		out = append(out, item)
	}
	return out, nil
}

// CountByStatus groups application counts by verification status
func (r *FundiRepository) CountByStatus(ctx context.Context) (map[entities.VerificationStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := GetDB(ctx, r.db).
		Model(&models.FundiApplication{}).
		Select("verification_status AS status, COUNT(*) AS total").
		Group("verification_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.VerificationStatus]int64, len(rows))
	for _, row := range rows {
		counts[entities.VerificationStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func toFundiEntity(m *models.FundiApplication) *entities.FundiApplication {
	documents := []string(m.Documents)
	if documents == nil {
		documents = []string{}
	}
	return &entities.FundiApplication{
		ID:         m.ID,
		UserID:     m.UserID,
		ServiceID:  m.ServiceID,
		LocationID: m.LocationID,
		HourlyRate: m.HourlyRate,
		Documents:  documents,
		Status:     entities.VerificationStatus(m.VerificationStatus),
		AppliedAt:  m.AppliedAt,
		ReviewedAt: m.ReviewedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
