package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string      `gorm:"type:varchar(100);not null"`
	Phone        null.String `gorm:"type:varchar(20)"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Role         string      `gorm:"type:varchar(20);not null;default:'USER'"`
	Verification string      `gorm:"type:varchar(20);not null;default:'unverified'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
