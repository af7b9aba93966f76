package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"transit/internal/domain"
	"transit/internal/repository"
)

// RideRepository is a PostgreSQL implementation of
// repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// Create persists a new ride.
func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	query := `
		INSERT INTO rides (id, license_plate, route_no, license_id, start_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.LicensePlate,
		ride.RouteNo,
		ride.LicenseID,
		ride.StartTime,
	)

	return err
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `
		SELECT id, license_plate, route_no, license_id, start_time
		FROM rides WHERE id = $1
	`

	var ride domain.Ride
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&ride.ID,
		&ride.LicensePlate,
		&ride.RouteNo,
		&ride.LicenseID,
		&ride.StartTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &ride, nil
}

// ListAfter retrieves all rides starting strictly after the given time.
func (r *RideRepository) ListAfter(ctx context.Context, after time.Time) ([]*domain.Ride, error) {
	query := `
		SELECT id, license_plate, route_no, license_id, start_time
		FROM rides WHERE start_time > $1
		ORDER BY start_time
	`

	rows, err := r.q.QueryContext(ctx, query, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRides(rows)
}

// ListByDriverAfter retrieves a driver's rides starting strictly after the
// given time.
func (r *RideRepository) ListByDriverAfter(ctx context.Context, licenseID string, after time.Time) ([]*domain.Ride, error) {
	query := `
		SELECT id, license_plate, route_no, license_id, start_time
		FROM rides WHERE license_id = $1 AND start_time > $2
		ORDER BY start_time
	`

	rows, err := r.q.QueryContext(ctx, query, licenseID, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRides(rows)
}

// CountByRoute returns the number of rides scheduled on every route,
// including routes with no rides.
func (r *RideRepository) CountByRoute(ctx context.Context) ([]domain.RouteUsage, error) {
	query := `
		SELECT routes.route_no, COUNT(rides.id)
		FROM routes
		LEFT JOIN rides ON rides.route_no = routes.route_no
		GROUP BY routes.route_no
		ORDER BY routes.route_no
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []domain.RouteUsage
	for rows.Next() {
		var u domain.RouteUsage
		if err := rows.Scan(&u.RouteNo, &u.TicketsSold); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func scanRides(rows *sql.Rows) ([]*domain.Ride, error) {
	var rides []*domain.Ride
	for rows.Next() {
		var ride domain.Ride
		if err := rows.Scan(
			&ride.ID,
			&ride.LicensePlate,
			&ride.RouteNo,
			&ride.LicenseID,
			&ride.StartTime,
		); err != nil {
			return nil, err
		}
		rides = append(rides, &ride)
	}
	return rides, rows.Err()
}
