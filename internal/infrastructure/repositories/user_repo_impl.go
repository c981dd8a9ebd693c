package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/infrastructure/models"
	"fundilink.backend/pkg/utils"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A taken email yields ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Verification: user.Verification,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// UpdateVerification sets the user's denormalized verification marker
func (r *UserRepository) UpdateVerification(ctx context.Context, id uuid.UUID, verification string) error {
	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verification": verification,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users newest first, optionally filtered by a case-insensitive name/email search
func (r *UserRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.User{})

	if search = strings.TrimSpace(search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	var userModels []models.User
	if err := query.Order("created_at DESC").Order("id DESC").Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserEntity(&userModels[i]))
	}
	return users, total, nil
}

// Count returns the number of registered users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&models.User{}).Count(&total).Error
	return total, err
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		Verification: m.Verification,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
