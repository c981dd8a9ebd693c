package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// FundiApplication is keyed one-to-one on user_id; the unique index closes the
// window between the existence check and the insert.
type FundiApplication struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ServiceID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID         *uuid.UUID      `gorm:"type:uuid;index"`
	HourlyRate         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Documents          pq.StringArray  `gorm:"type:text[]"`
	VerificationStatus string          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AppliedAt          time.Time       `gorm:"not null"`
	ReviewedAt         null.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User     User      `gorm:"foreignKey:UserID"`
	Service  Service   `gorm:"foreignKey:ServiceID"`
	Location *Location `gorm:"foreignKey:LocationID"`
}

func (FundiApplication) TableName() string {
	return "fundi_applications"
}
