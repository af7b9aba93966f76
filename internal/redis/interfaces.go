package redis

import (
	"context"

	"transit/internal/domain"
)

// CacheStoreInterface defines the read-path cache operations consumed by
// the services.
type CacheStoreInterface interface {
	GetPassengerTickets(ctx context.Context, passengerID string) (*domain.PassengerTickets, error)
	SetPassengerTickets(ctx context.Context, passengerID string, tickets *domain.PassengerTickets) error
	InvalidatePassengerTickets(ctx context.Context, passengerID string) error
	GetRouteUsage(ctx context.Context) ([]domain.RouteUsage, error)
	SetRouteUsage(ctx context.Context, usage []domain.RouteUsage) error
}

// Ensure concrete types implement interfaces.
var _ CacheStoreInterface = (*CacheStore)(nil)
