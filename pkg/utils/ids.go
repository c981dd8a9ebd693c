package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// NewID returns a time-ordered UUID v7, falling back to v4 if the clock source fails
func NewID() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ParseID parses a path or body identifier, rejecting the nil UUID
func ParseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
