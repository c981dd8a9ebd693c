package usecases

import (
	"context"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/domain/repositories"
	"fundilink.backend/pkg/utils"
)

// AdminUsecase serves the admin dashboard
type AdminUsecase struct {
	userRepo     repositories.UserRepository
	serviceRepo  repositories.ServiceRepository
	locationRepo repositories.LocationRepository
	fundiRepo    repositories.FundiRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	serviceRepo repositories.ServiceRepository,
	locationRepo repositories.LocationRepository,
	fundiRepo repositories.FundiRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:     userRepo,
		serviceRepo:  serviceRepo,
		locationRepo: locationRepo,
		fundiRepo:    fundiRepo,
	}
}

// ListUsers returns a page of users matching search
func (u *AdminUsecase) ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	pagination := utils.GetPaginationParams(page, limit)
	users, total, err := u.userRepo.List(ctx, search, pagination)
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.InternalError(err)
	}
	if users == nil {
		users = []*entities.User{}
	}
	return users, utils.CalculateMeta(total, pagination.Page, pagination.Limit), nil
}

// Stats counts users, catalog entries and applications by status
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.AdminStats, error) {
	totalUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	totalServices, err := u.serviceRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	totalLocations, err := u.locationRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	byStatus, err := u.fundiRepo.CountByStatus(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	stats := &entities.AdminStats{
		TotalUsers:           totalUsers,
		TotalServices:        totalServices,
		TotalLocations:       totalLocations,
		PendingApplications:  byStatus[entities.VerificationPending],
		VerifiedApplications: byStatus[entities.VerificationVerified],
		RejectedApplications: byStatus[entities.VerificationRejected],
	}
	for _, n := range byStatus {
		stats.TotalApplications += n
	}
	return stats, nil
}
