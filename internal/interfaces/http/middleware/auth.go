package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/interfaces/http/response"
	"fundilink.backend/pkg/jwt"
	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// SessionHeader carries an opaque session id issued at sign-in
	SessionHeader = "X-Session-Id"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// SessionReader resolves a session id to the tokens stored for it
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
}

// AuthMiddleware identifies the caller from a session id or a bearer token.
// A session id takes precedence; when it cannot be resolved the bearer token is tried.
func AuthMiddleware(jwtService *jwt.JWTService, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		tokenString := ""

		if sessionID := c.GetHeader(SessionHeader); sessionID != "" && sessions != nil {
			session, err := sessions.GetSession(ctx, sessionID)
			switch {
			case err == nil:
				tokenString = session.AccessToken
			case errors.Is(err, redis.ErrSessionNotFound):
				logger.Debug(ctx, "Session not found", zap.String("path", c.Request.URL.Path))
			default:
				logger.Warn(ctx, "Session lookup failed", zap.Error(err))
			}
		}

		if tokenString == "" {
			authHeader := c.GetHeader(AuthorizationHeader)
			if authHeader == "" {
				response.Abort(c, domainerrors.Unauthorized("Authentication required"))
				return
			}
			if !strings.HasPrefix(authHeader, BearerPrefix) {
				response.Abort(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
				return
			}
			tokenString = strings.TrimPrefix(authHeader, BearerPrefix)
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Warn(ctx, "Token validation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Abort(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Token has expired", domainerrors.ErrTokenExpired))
				return
			}
			response.Abort(c, domainerrors.Unauthorized("Invalid token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.ContextWithUserID(ctx, claims.UserID.String()))

		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// RequireRole creates a middleware that requires one of roles
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			response.Abort(c, domainerrors.Unauthorized("User role not found"))
			return
		}

		for _, role := range roles {
			if userRole == string(role) {
				c.Next()
				return
			}
		}

		response.Abort(c, domainerrors.Forbidden("Insufficient permissions"))
	}
}

// RequireAdmin allows ADMIN and SUPERADMIN
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin, entities.UserRoleSuperAdmin)
}
