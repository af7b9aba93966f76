package postgres

import (
	"context"
	"database/sql"

	"transit/internal/domain"
)

// DriverRepository is a PostgreSQL implementation of
// repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// Create persists a new driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `
		INSERT INTO drivers (license_id, first_name, last_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, driver.LicenseID, driver.FirstName, driver.LastName)
	return err
}

// BusRepository is a PostgreSQL implementation of repository.BusRepository.
type BusRepository struct {
	q Querier
}

// NewBusRepository creates a new PostgreSQL bus repository.
func NewBusRepository(db *sql.DB) *BusRepository {
	return &BusRepository{q: db}
}

// CreateModel persists a new bus model.
func (r *BusRepository) CreateModel(ctx context.Context, model *domain.BusModel) error {
	query := `
		INSERT INTO bus_models (model_id, size)
		VALUES ($1, $2)
	`

	_, err := r.q.ExecContext(ctx, query, model.ModelID, model.Size)
	return err
}

// Create persists a new bus.
func (r *BusRepository) Create(ctx context.Context, bus *domain.Bus) error {
	query := `
		INSERT INTO buses (license_plate, model_id, working)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, bus.LicensePlate, bus.ModelID, bus.Working)
	return err
}

// RouteRepository is a PostgreSQL implementation of
// repository.RouteRepository.
type RouteRepository struct {
	q Querier
}

// NewRouteRepository creates a new PostgreSQL route repository.
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{q: db}
}

// Create persists a new route.
func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (route_no)
		VALUES ($1)
	`

	_, err := r.q.ExecContext(ctx, query, route.RouteNo)
	return err
}

// CreateStop persists a new stop.
func (r *RouteRepository) CreateStop(ctx context.Context, stop *domain.Stop) error {
	query := `
		INSERT INTO stops (stop_id, stop_name, coordinates)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, stop.StopID, stop.Name, stop.Coordinates)
	return err
}

// AddStop places a stop on a route at a fixed position.
func (r *RouteRepository) AddStop(ctx context.Context, placement *domain.StopEnRoute) error {
	query := `
		INSERT INTO stops_en_route (stop_id, route_no, stop_order)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, placement.StopID, placement.RouteNo, placement.StopOrder)
	return err
}
