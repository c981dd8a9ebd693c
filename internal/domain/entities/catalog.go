package entities

import (
	"time"

	"github.com/google/uuid"
)

// Service is a category of work a fundi can offer, e.g. "Plumbing"
type Service struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Location is a named area a fundi operates in
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CatalogNameInput is the body for creating or renaming a service or location
type CatalogNameInput struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
