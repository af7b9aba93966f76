package repository

import (
	"context"

	"transit/internal/domain"
)

// PassengerRepository defines the persistence operations for passengers.
type PassengerRepository interface {
	// Create persists a new passenger.
	Create(ctx context.Context, passenger *domain.Passenger) error

	// GetByID retrieves a passenger by ID.
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)

	// UpdateName replaces a passenger's name fields.
	UpdateName(ctx context.Context, id, firstName, lastName string) error
}
