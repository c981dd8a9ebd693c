package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/interfaces/http/middleware"
	"fundilink.backend/internal/interfaces/http/response"
	"fundilink.backend/pkg/crypto"
	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/redis"
)

const (
	accessCookie  = "token"
	refreshCookie = "refresh_token"
)

var generateSessionID = crypto.GenerateSessionID

// AuthService is the authentication flow consumed by AuthHandler
type AuthService interface {
	SignUp(ctx context.Context, input *entities.SignUpInput) (*entities.User, error)
	SignIn(ctx context.Context, input *entities.SignInInput) (*entities.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	RefreshExpiry() time.Duration
}

// SessionStore persists session-based sign-ins
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService   AuthService
	sessions      SessionStore
	secureCookies bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, sessions SessionStore, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

// SignUp handles user registration
// POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input entities.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    user,
	})
}

// SignIn handles user login. With useSession the token pair stays server-side
// and only an opaque session id is returned.
// POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input entities.SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ctx := c.Request.Context()
	auth, err := h.authService.SignIn(ctx, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if input.UseSession {
		sessionID, err := generateSessionID()
		if err != nil {
			response.Error(c, domainerrors.InternalError(err))
			return
		}
		err = h.sessions.CreateSession(ctx, sessionID, &redis.SessionData{
			UserID:       auth.User.ID.String(),
			AccessToken:  auth.AccessToken,
			RefreshToken: auth.RefreshToken,
		}, h.authService.RefreshExpiry())
		if err != nil {
			logger.Error(ctx, "Failed to create session", zap.Error(err))
			response.Error(c, domainerrors.InternalError(err))
			return
		}

		response.Success(c, http.StatusOK, &entities.AuthResponse{
			SessionID: sessionID,
			ExpiresAt: auth.ExpiresAt,
			User:      auth.User,
		})
		return
	}

	h.setAuthCookies(c, auth)
	response.Success(c, http.StatusOK, auth)
}

// Refresh exchanges a refresh token taken from the body or the cookie
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var refreshToken string

	if c.Request.ContentLength > 0 {
		var input entities.RefreshInput
		if err := c.ShouldBindJSON(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}
	if refreshToken == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			refreshToken = cookie
		}
	}
	if refreshToken == "" {
		response.Error(c, domainerrors.BadRequest("Refresh token is required"))
		return
	}

	auth, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookies(c, auth)
	response.Success(c, http.StatusOK, auth)
}

// GetMe returns current authenticated user details
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// SignOut drops the caller's session and clears auth cookies
// POST /api/v1/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()
	if sessionID := c.GetHeader(middleware.SessionHeader); sessionID != "" {
		if err := h.sessions.DeleteSession(ctx, sessionID); err != nil {
			logger.Warn(ctx, "Failed to delete session", zap.Error(err))
		}
	}

	c.SetCookie(accessCookie, "", -1, "/", "", h.secureCookies, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secureCookies, true)

	response.Success(c, http.StatusOK, entities.ActionResponse{Success: true, Message: "Signed out"})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, auth *entities.AuthResponse) {
	accessMaxAge := int(time.Until(auth.ExpiresAt).Seconds())
	c.SetCookie(accessCookie, auth.AccessToken, accessMaxAge, "/", "", h.secureCookies, true)
	c.SetCookie(refreshCookie, auth.RefreshToken, int(h.authService.RefreshExpiry().Seconds()), "/", "", h.secureCookies, true)
}
