package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/domain/repositories"
	"fundilink.backend/pkg/crypto"
	"fundilink.backend/pkg/jwt"
	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/utils"
)

var hashPassword = crypto.HashPassword

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a USER account with an unverified marker
func (u *AuthUsecase) SignUp(ctx context.Context, input *entities.SignUpInput) (*entities.User, error) {
	email := normalizeEmail(input.Email)

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict(MsgEmailTaken)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooShort) {
			return nil, domainerrors.BadRequest(MsgPasswordTooShort)
		}
		return nil, domainerrors.InternalError(err)
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		Verification: entities.UserVerificationUnverified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = null.StringFrom(phone)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(MsgEmailTaken)
		}
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "User signed up", zap.String("user_id", user.ID.String()))
	return user, nil
}

// SignIn checks credentials and issues a token pair
func (u *AuthUsecase) SignIn(ctx context.Context, input *entities.SignInInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials(MsgInvalidCredentials)
		}
		return nil, domainerrors.InternalError(err)
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials(MsgInvalidCredentials)
	}

	return u.issue(user)
}

// Refresh exchanges a refresh token for a new pair, re-reading the user so role changes apply
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized(MsgInvalidRefreshToken)
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized(MsgInvalidRefreshToken)
		}
		return nil, domainerrors.InternalError(err)
	}

	return u.issue(user)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// RefreshExpiry is the lifetime used for refresh cookies and sessions
func (u *AuthUsecase) RefreshExpiry() time.Duration {
	return u.jwtService.RefreshExpiry()
}

func (u *AuthUsecase) issue(user *entities.User) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		User:         user,
	}, nil
}
