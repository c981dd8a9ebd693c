package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus is the lifecycle state of a fundi application.
// PENDING is the only initial state; VERIFIED and REJECTED are terminal.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

var validVerificationStatuses = []VerificationStatus{
	VerificationPending,
	VerificationVerified,
	VerificationRejected,
}

// String implements fmt.Stringer.
func (s VerificationStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known statuses.
func (s VerificationStatus) IsValid() bool {
	for _, candidate := range validVerificationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s VerificationStatus) IsTerminal() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// ParseDecisionStatus accepts only the statuses an admin may decide on.
func ParseDecisionStatus(value string) (VerificationStatus, error) {
	switch s := VerificationStatus(value); s {
	case VerificationVerified, VerificationRejected:
		return s, nil
	}
	return "", fmt.Errorf("invalid decision status %q", value)
}

// FundiApplication is one user's request to be onboarded as a service provider
type FundiApplication struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"userId"`
	ServiceID  uuid.UUID          `json:"serviceId"`
	LocationID *uuid.UUID         `json:"locationId"`
	HourlyRate decimal.Decimal    `json:"hourlyRate"`
	Documents  []string           `json:"documents"`
	Status     VerificationStatus `json:"verificationStatus"`
	AppliedAt  time.Time          `json:"appliedAt"`
	ReviewedAt null.Time          `json:"reviewedAt"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// FundiWithRelations is an application hydrated with its user, service and location
type FundiWithRelations struct {
	FundiApplication
	User     *User     `json:"user"`
	Service  *Service  `json:"service"`
	Location *Location `json:"location"`
}

// ApplyFundiInput represents the body of an application submission.
// Identifiers stay strings so unknown or malformed ids surface as referential errors.
type ApplyFundiInput struct {
	ServiceID  string          `json:"serviceId" binding:"required"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	LocationID *string         `json:"locationId,omitempty"`
	Documents  []string        `json:"documents,omitempty" binding:"omitempty,max=10,dive,url"`
}

// VerifyFundiInput represents the admin decision body
type VerifyFundiInput struct {
	VerificationStatus string `json:"verificationStatus"`
}

// FundiStatusResponse is the caller's view of their own application
type FundiStatusResponse struct {
	ApplicationID      uuid.UUID          `json:"applicationId"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	ServiceID          uuid.UUID          `json:"serviceId"`
	LocationID         *uuid.UUID         `json:"locationId"`
	HourlyRate         decimal.Decimal    `json:"hourlyRate"`
	AppliedAt          time.Time          `json:"appliedAt"`
	ReviewedAt         null.Time          `json:"reviewedAt"`
}

// AdminStats summarizes users and applications for the admin dashboard
type AdminStats struct {
	TotalUsers           int64 `json:"totalUsers"`
	TotalServices        int64 `json:"totalServices"`
	TotalLocations       int64 `json:"totalLocations"`
	TotalApplications    int64 `json:"totalApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
	VerifiedApplications int64 `json:"verifiedApplications"`
	RejectedApplications int64 `json:"rejectedApplications"`
}
