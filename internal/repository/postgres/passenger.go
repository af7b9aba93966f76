package postgres

import (
	"context"
	"database/sql"
	"errors"

	"transit/internal/domain"
	"transit/internal/repository"
)

// PassengerRepository is a PostgreSQL implementation of
// repository.PassengerRepository.
type PassengerRepository struct {
	q Querier
}

// NewPassengerRepository creates a new PostgreSQL passenger repository.
func NewPassengerRepository(db *sql.DB) *PassengerRepository {
	return &PassengerRepository{q: db}
}

// Create persists a new passenger.
func (r *PassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	query := `
		INSERT INTO passengers (id, first_name, last_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, passenger.ID, passenger.FirstName, passenger.LastName)
	return err
}

// GetByID retrieves a passenger by ID.
func (r *PassengerRepository) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	query := `
		SELECT id, first_name, last_name
		FROM passengers WHERE id = $1
	`

	var passenger domain.Passenger
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&passenger.ID,
		&passenger.FirstName,
		&passenger.LastName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &passenger, nil
}

// UpdateName replaces a passenger's name fields.
func (r *PassengerRepository) UpdateName(ctx context.Context, id, firstName, lastName string) error {
	query := `
		UPDATE passengers
		SET first_name = $1, last_name = $2
		WHERE id = $3
	`

	result, err := r.q.ExecContext(ctx, query, firstName, lastName, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
