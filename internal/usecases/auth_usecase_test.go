package usecases_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/usecases"
	"fundilink.backend/pkg/crypto"
	"fundilink.backend/pkg/jwt"
)

func newAuthUsecaseForTest(userRepo *MockUserRepository) (*usecases.AuthUsecase, *jwt.JWTService) {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, jwtSvc), jwtSvc
}

func TestAuthUsecase_SignUp_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc, _ := newAuthUsecaseForTest(userRepo)

	userRepo.On("GetByEmail", context.Background(), "wanjiku@fundilink.co.ke").Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()

	user, err := uc.SignUp(context.Background(), &entities.SignUpInput{
		Email:    "  Wanjiku@FundiLink.co.ke ",
		Password: "Password123!",
		Name:     "Wanjiku",
		Phone:    "+254700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "wanjiku@fundilink.co.ke", user.Email)
	assert.Equal(t, entities.UserRoleUser, user.Role)
	assert.Equal(t, entities.UserVerificationUnverified, user.Verification)
	assert.Equal(t, "+254700000000", user.Phone.String)
	assert.True(t, crypto.CheckPassword("Password123!", user.PasswordHash))
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_SignUp_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc, _ := newAuthUsecaseForTest(userRepo)

	userRepo.On("GetByEmail", context.Background(), "taken@fundilink.co.ke").Return(&entities.User{ID: uuid.New()}, nil).Once()

	_, err := uc.SignUp(context.Background(), &entities.SignUpInput{
		Email:    "taken@fundilink.co.ke",
		Password: "Password123!",
		Name:     "Taken",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_SignUp_ErrorBranches(t *testing.T) {
	t.Run("lookup fails", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, _ := newAuthUsecaseForTest(userRepo)
		userRepo.On("GetByEmail", context.Background(), "a@b.co").Return(nil, errors.New("db down")).Once()

		_, err := uc.SignUp(context.Background(), &entities.SignUpInput{Email: "a@b.co", Password: "Password123!", Name: "A"})
		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	})

	t.Run("password too short", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, _ := newAuthUsecaseForTest(userRepo)
		userRepo.On("GetByEmail", context.Background(), "a@b.co").Return(nil, domainerrors.ErrNotFound).Once()

		_, err := uc.SignUp(context.Background(), &entities.SignUpInput{Email: "a@b.co", Password: "short", Name: "A"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("create races on unique email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, _ := newAuthUsecaseForTest(userRepo)
		userRepo.On("GetByEmail", context.Background(), "a@b.co").Return(nil, domainerrors.ErrNotFound).Once()
		userRepo.On("Create", context.Background(), mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()

		_, err := uc.SignUp(context.Background(), &entities.SignUpInput{Email: "a@b.co", Password: "Password123!", Name: "A"})
		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, appErr.Status)
		assert.Equal(t, usecases.MsgEmailTaken, appErr.Message)
	})
}

func TestAuthUsecase_SignIn(t *testing.T) {
	hash, err := crypto.HashPassword("Password123!")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "otieno@fundilink.co.ke", PasswordHash: hash, Role: entities.UserRoleAdmin}

	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, jwtSvc := newAuthUsecaseForTest(userRepo)
		userRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil).Once()

		resp, err := uc.SignIn(context.Background(), &entities.SignInInput{Email: "OTIENO@fundilink.co.ke", Password: "Password123!"})
		require.NoError(t, err)
		assert.Equal(t, user, resp.User)

		claims, err := jwtSvc.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, _ := newAuthUsecaseForTest(userRepo)
		userRepo.On("GetByEmail", context.Background(), user.Email).Return(user, nil).Once()

		_, err := uc.SignIn(context.Background(), &entities.SignInInput{Email: user.Email, Password: "nope-nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, _ := newAuthUsecaseForTest(userRepo)
		userRepo.On("GetByEmail", context.Background(), "ghost@fundilink.co.ke").Return(nil, domainerrors.ErrNotFound).Once()

		_, err := uc.SignIn(context.Background(), &entities.SignInInput{Email: "ghost@fundilink.co.ke", Password: "Password123!"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthUsecase_Refresh(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Email: "a@b.co", Role: entities.UserRoleUser}

	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, jwtSvc := newAuthUsecaseForTest(userRepo)
		pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Email, string(user.Role))
		require.NoError(t, err)
		userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()

		resp, err := uc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("access token rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, jwtSvc := newAuthUsecaseForTest(userRepo)
		pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Email, string(user.Role))
		require.NoError(t, err)

		_, err = uc.Refresh(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("user deleted", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc, jwtSvc := newAuthUsecaseForTest(userRepo)
		pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Email, string(user.Role))
		require.NoError(t, err)
		userRepo.On("GetByID", context.Background(), user.ID).Return(nil, domainerrors.ErrNotFound).Once()

		_, err = uc.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthUsecase_GetUserByID(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc, _ := newAuthUsecaseForTest(userRepo)
	id := uuid.New()

	userRepo.On("GetByID", context.Background(), id).Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.GetUserByID(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	userRepo.On("GetByID", context.Background(), id).Return(&entities.User{ID: id}, nil).Once()
	user, err := uc.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	assert.Equal(t, 24*time.Hour, uc.RefreshExpiry())
}
