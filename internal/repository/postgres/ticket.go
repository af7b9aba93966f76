package postgres

import (
	"context"
	"database/sql"
	"errors"

	"transit/internal/domain"
	"transit/internal/repository"
)

// OneTimeTicketRepository is a PostgreSQL implementation of
// repository.OneTimeTicketRepository.
type OneTimeTicketRepository struct {
	q Querier
}

// NewOneTimeTicketRepository creates a new PostgreSQL one-time ticket
// repository.
func NewOneTimeTicketRepository(db *sql.DB) *OneTimeTicketRepository {
	return &OneTimeTicketRepository{q: db}
}

// NewOneTimeTicketRepositoryWithTx creates a one-time ticket repository
// using a transaction.
func NewOneTimeTicketRepositoryWithTx(tx *sql.Tx) *OneTimeTicketRepository {
	return &OneTimeTicketRepository{q: tx}
}

// Create persists a new one-time ticket.
func (r *OneTimeTicketRepository) Create(ctx context.Context, ticket *domain.OneTimeTicket) error {
	query := `
		INSERT INTO one_time_tickets (id, passenger_id, issue_date)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, ticket.ID, ticket.PassengerID, ticket.IssueDate)
	return err
}

// GetByID retrieves a one-time ticket by ID.
func (r *OneTimeTicketRepository) GetByID(ctx context.Context, id string) (*domain.OneTimeTicket, error) {
	query := `
		SELECT id, passenger_id, issue_date
		FROM one_time_tickets WHERE id = $1
	`

	var ticket domain.OneTimeTicket
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.PassengerID,
		&ticket.IssueDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

// GetByPassengerID retrieves all one-time tickets owned by a passenger.
func (r *OneTimeTicketRepository) GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.OneTimeTicket, error) {
	query := `
		SELECT id, passenger_id, issue_date
		FROM one_time_tickets WHERE passenger_id = $1
		ORDER BY issue_date
	`

	rows, err := r.q.QueryContext(ctx, query, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.OneTimeTicket
	for rows.Next() {
		var ticket domain.OneTimeTicket
		if err := rows.Scan(&ticket.ID, &ticket.PassengerID, &ticket.IssueDate); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}
	return tickets, rows.Err()
}

// WeeklyTicketRepository is a PostgreSQL implementation of
// repository.WeeklyTicketRepository.
type WeeklyTicketRepository struct {
	q Querier
}

// NewWeeklyTicketRepository creates a new PostgreSQL weekly ticket
// repository.
func NewWeeklyTicketRepository(db *sql.DB) *WeeklyTicketRepository {
	return &WeeklyTicketRepository{q: db}
}

// NewWeeklyTicketRepositoryWithTx creates a weekly ticket repository using
// a transaction.
func NewWeeklyTicketRepositoryWithTx(tx *sql.Tx) *WeeklyTicketRepository {
	return &WeeklyTicketRepository{q: tx}
}

// Create persists a new weekly ticket.
func (r *WeeklyTicketRepository) Create(ctx context.Context, ticket *domain.WeeklyTicket) error {
	query := `
		INSERT INTO weekly_tickets (id, passenger_id, issue_date)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query, ticket.ID, ticket.PassengerID, ticket.IssueDate)
	return err
}

// GetByID retrieves a weekly ticket by ID.
func (r *WeeklyTicketRepository) GetByID(ctx context.Context, id string) (*domain.WeeklyTicket, error) {
	query := `
		SELECT id, passenger_id, issue_date
		FROM weekly_tickets WHERE id = $1
	`

	var ticket domain.WeeklyTicket
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.PassengerID,
		&ticket.IssueDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

// GetByPassengerID retrieves all weekly tickets owned by a passenger.
func (r *WeeklyTicketRepository) GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.WeeklyTicket, error) {
	query := `
		SELECT id, passenger_id, issue_date
		FROM weekly_tickets WHERE passenger_id = $1
		ORDER BY issue_date
	`

	rows, err := r.q.QueryContext(ctx, query, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.WeeklyTicket
	for rows.Next() {
		var ticket domain.WeeklyTicket
		if err := rows.Scan(&ticket.ID, &ticket.PassengerID, &ticket.IssueDate); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}
	return tickets, rows.Err()
}
