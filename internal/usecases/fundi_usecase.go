package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/domain/repositories"
	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/metrics"
	"fundilink.backend/pkg/utils"
)

// FundiUsecase runs the fundi onboarding lifecycle: intake, verification decision and query views
type FundiUsecase struct {
	fundiRepo    repositories.FundiRepository
	serviceRepo  repositories.ServiceRepository
	locationRepo repositories.LocationRepository
	userRepo     repositories.UserRepository
	uow          repositories.UnitOfWork
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewFundiUsecase creates a new fundi usecase
func NewFundiUsecase(
	fundiRepo repositories.FundiRepository,
	serviceRepo repositories.ServiceRepository,
	locationRepo repositories.LocationRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	m *metrics.Metrics,
) *FundiUsecase {
	return &FundiUsecase{
		fundiRepo:    fundiRepo,
		serviceRepo:  serviceRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		uow:          uow,
		metrics:      m,
		now:          time.Now,
	}
}

// Apply submits a PENDING application for userID.
// The existence check and the insert share one transaction, and the unique index on
// user_id turns a concurrent duplicate into the same "already exists" error.
// Every failure is a client error; unexpected ones carry a generic message.
func (u *FundiUsecase) Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyFundiInput) (*entities.ActionResponse, error) {
	if !input.HourlyRate.GreaterThan(decimal.Zero) {
		u.metrics.IncApplication(outcomeRejected)
		return nil, domainerrors.BadRequest(MsgInvalidHourlyRate)
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		exists, err := u.fundiRepo.ExistsForUser(txCtx, userID)
		if err != nil {
			return err
		}
		if exists {
			return errFundiExists()
		}

		serviceID, err := u.resolveService(txCtx, input.ServiceID)
		if err != nil {
			return err
		}
		locationID, err := u.resolveLocation(txCtx, input.LocationID)
		if err != nil {
			return err
		}

		now := u.now()
		application := &entities.FundiApplication{
			ID:         utils.NewID(),
			UserID:     userID,
			ServiceID:  serviceID,
			LocationID: locationID,
			HourlyRate: input.HourlyRate,
			Documents:  cleanDocuments(input.Documents),
			Status:     entities.VerificationPending,
			AppliedAt:  now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := u.fundiRepo.Create(txCtx, application); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return errFundiExists()
			}
			return err
		}
		return nil
	})
	if err != nil {
		if appErr, ok := domainerrors.AsAppError(err); ok {
			if errors.Is(appErr, domainerrors.ErrAlreadyExists) {
				u.metrics.IncApplication(outcomeDuplicate)
			} else {
				u.metrics.IncApplication(outcomeRejected)
			}
			return nil, appErr
		}
		u.metrics.IncApplication(outcomeFailed)
		logger.Error(ctx, "Failed to submit fundi application", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, domainerrors.NewError(MsgApplyFailed, err)
	}

	u.metrics.IncApplication(outcomeSubmitted)
	logger.Info(ctx, "Fundi application submitted", zap.String("user_id", userID.String()))
	return &entities.ActionResponse{Success: true, Message: MsgApplicationSubmitted}, nil
}

// duplicates are reported as a client error, not a conflict
func errFundiExists() *domainerrors.AppError {
	return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeBadRequest, MsgFundiAlreadyExists, domainerrors.ErrAlreadyExists)
}

func (u *FundiUsecase) resolveService(ctx context.Context, raw string) (uuid.UUID, error) {
	id, ok := utils.ParseID(strings.TrimSpace(raw))
	if !ok {
		return uuid.Nil, domainerrors.BadRequest(MsgServiceNotFound)
	}
	if _, err := u.serviceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return uuid.Nil, domainerrors.BadRequest(MsgServiceNotFound)
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (u *FundiUsecase) resolveLocation(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, ok := utils.ParseID(strings.TrimSpace(*raw))
	if !ok {
		return nil, domainerrors.BadRequest(MsgLocationNotFound)
	}
	if _, err := u.locationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest(MsgLocationNotFound)
		}
		return nil, err
	}
	return &id, nil
}

func cleanDocuments(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// Decide records an admin decision on a PENDING application and mirrors it onto the owner.
// Both writes commit together or not at all.
func (u *FundiUsecase) Decide(ctx context.Context, rawApplicationID, rawStatus string) (*entities.ActionResponse, error) {
	var decided entities.VerificationStatus

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		id, ok := utils.ParseID(rawApplicationID)
		if !ok {
			return domainerrors.NotFound(MsgFundiNotFound)
		}

		application, err := u.fundiRepo.GetByID(u.uow.WithLock(txCtx), id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound(MsgFundiNotFound)
			}
			return err
		}

		status, err := entities.ParseDecisionStatus(strings.TrimSpace(rawStatus))
		if err != nil {
			return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidInput, MsgInvalidDecision, domainerrors.ErrInvalidStatus)
		}
		if application.Status.IsTerminal() {
			return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, MsgAlreadyReviewed, domainerrors.ErrAlreadyReviewed)
		}

		if err := u.fundiRepo.UpdateStatus(txCtx, application.ID, status); err != nil {
			return err
		}
		if err := u.userRepo.UpdateVerification(txCtx, application.UserID, status.String()); err != nil {
			return err
		}
		decided = status
		return nil
	})
	if err != nil {
		if appErr, ok := domainerrors.AsAppError(err); ok {
			return nil, appErr
		}
		logger.Error(ctx, "Failed to record fundi decision", zap.String("application_id", rawApplicationID), zap.Error(err))
		return nil, domainerrors.NewAppError(http.StatusInternalServerError, domainerrors.CodeInternalError, MsgDecisionFailed, err)
	}

	u.metrics.IncDecision(decided.String())
	logger.Info(ctx, "Fundi decision recorded",
		zap.String("application_id", rawApplicationID),
		zap.String("status", decided.String()),
	)

	message := MsgFundiVerified
	if decided == entities.VerificationRejected {
		message = MsgFundiRejected
	}
	return &entities.ActionResponse{Success: true, Message: message}, nil
}

// ListPending returns PENDING applications, newest first. An empty result is not an error.
func (u *FundiUsecase) ListPending(ctx context.Context) ([]*entities.FundiWithRelations, error) {
	pending := entities.VerificationPending
	return u.list(ctx, &pending)
}

// ListAll returns every application, newest first. An empty result is not an error.
func (u *FundiUsecase) ListAll(ctx context.Context) ([]*entities.FundiWithRelations, error) {
	return u.list(ctx, nil)
}

func (u *FundiUsecase) list(ctx context.Context, status *entities.VerificationStatus) ([]*entities.FundiWithRelations, error) {
	items, err := u.fundiRepo.ListWithRelations(ctx, status)
	if err != nil {
		logger.Error(ctx, "Failed to fetch fundi applications", zap.Error(err))
		return nil, domainerrors.NewAppError(http.StatusInternalServerError, domainerrors.CodeInternalError, MsgFetchFailed, err)
	}
	if items == nil {
		items = []*entities.FundiWithRelations{}
	}
	return items, nil
}

// GetStatus returns the caller's own application
func (u *FundiUsecase) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.FundiStatusResponse, error) {
	application, err := u.fundiRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgNoApplication)
		}
		logger.Error(ctx, "Failed to fetch fundi application status", zap.Error(err))
		return nil, domainerrors.NewAppError(http.StatusInternalServerError, domainerrors.CodeInternalError, MsgStatusFetchFailed, err)
	}

	return &entities.FundiStatusResponse{
		ApplicationID:      application.ID,
		VerificationStatus: application.Status,
		ServiceID:          application.ServiceID,
		LocationID:         application.LocationID,
		HourlyRate:         application.HourlyRate,
		AppliedAt:          application.AppliedAt,
		ReviewedAt:         application.ReviewedAt,
	}, nil
}
