package repository

import (
	"context"

	"transit/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Create persists a new driver.
	Create(ctx context.Context, driver *domain.Driver) error
}

// BusRepository defines the persistence operations for buses and their
// models.
type BusRepository interface {
	// CreateModel persists a new bus model.
	CreateModel(ctx context.Context, model *domain.BusModel) error

	// Create persists a new bus.
	Create(ctx context.Context, bus *domain.Bus) error
}

// RouteRepository defines the persistence operations for routes and the
// stops placed on them.
type RouteRepository interface {
	// Create persists a new route.
	Create(ctx context.Context, route *domain.Route) error

	// CreateStop persists a new stop.
	CreateStop(ctx context.Context, stop *domain.Stop) error

	// AddStop places a stop on a route at a fixed position.
	AddStop(ctx context.Context, placement *domain.StopEnRoute) error
}
