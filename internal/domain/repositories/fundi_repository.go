package repositories

import (
	"context"

	"github.com/google/uuid"

	"fundilink.backend/internal/domain/entities"
)

// FundiRepository defines fundi application operations.
// Implementations must participate in a transaction started by UnitOfWork.
type FundiRepository interface {
	Create(ctx context.Context, application *entities.FundiApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FundiApplication, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FundiApplication, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error
	// ListWithRelations returns applications newest first; a nil status lists all of them.
	ListWithRelations(ctx context.Context, status *entities.VerificationStatus) ([]*entities.FundiWithRelations, error)
	CountByStatus(ctx context.Context) (map[entities.VerificationStatus]int64, error)
}
