package repository

import (
	"context"
	"time"

	"transit/internal/domain"
)

// RideRepository defines the persistence operations for scheduled rides.
type RideRepository interface {
	// Create persists a new ride.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// ListAfter retrieves all rides starting strictly after the given time.
	ListAfter(ctx context.Context, after time.Time) ([]*domain.Ride, error)

	// ListByDriverAfter retrieves a driver's rides starting strictly after
	// the given time.
	ListByDriverAfter(ctx context.Context, licenseID string, after time.Time) ([]*domain.Ride, error)

	// CountByRoute returns, for every route, the number of rides scheduled
	// on it. Routes with no rides are included with a zero count.
	CountByRoute(ctx context.Context) ([]domain.RouteUsage, error)
}
