package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPERADMIN"
)

// UserVerificationUnverified is the verification marker of a user who has never been reviewed.
// Once a decision is recorded the field mirrors the application status.
const UserVerificationUnverified = "unverified"

// IsAdmin reports whether the role may review applications and manage the catalog
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// User represents a user entity
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Phone        null.String `json:"phone"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	Verification string      `json:"verification"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// SignUpInput represents input for creating an account
type SignUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,max=20"`
}

// SignInInput represents input for user login
type SignInInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // store tokens in Redis and return a session id instead
}

// RefreshInput carries a refresh token when it is not sent as a cookie
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	SessionID    string    `json:"sessionId,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         *User     `json:"user"`
}
