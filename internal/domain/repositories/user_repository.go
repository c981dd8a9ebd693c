package repositories

import (
	"context"

	"github.com/google/uuid"

	"fundilink.backend/internal/domain/entities"
	"fundilink.backend/pkg/utils"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, verification string) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error)
	Count(ctx context.Context) (int64, error)
}
