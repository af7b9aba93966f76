package repository

import (
	"context"

	"transit/internal/domain"
)

// OneTimeTicketRepository defines the persistence operations for one-time
// tickets.
type OneTimeTicketRepository interface {
	// Create persists a new one-time ticket.
	Create(ctx context.Context, ticket *domain.OneTimeTicket) error

	// GetByID retrieves a one-time ticket by ID.
	GetByID(ctx context.Context, id string) (*domain.OneTimeTicket, error)

	// GetByPassengerID retrieves all one-time tickets owned by a passenger.
	GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.OneTimeTicket, error)
}

// WeeklyTicketRepository defines the persistence operations for weekly
// tickets.
type WeeklyTicketRepository interface {
	// Create persists a new weekly ticket.
	Create(ctx context.Context, ticket *domain.WeeklyTicket) error

	// GetByID retrieves a weekly ticket by ID.
	GetByID(ctx context.Context, id string) (*domain.WeeklyTicket, error)

	// GetByPassengerID retrieves all weekly tickets owned by a passenger.
	GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.WeeklyTicket, error)
}

// TicketUseRepository defines the persistence operations for ticket-use
// records.
type TicketUseRepository interface {
	// Create appends a use record. For one-time references the insert is
	// atomic with the reuse check: a second insert for the same ticket
	// returns ErrDuplicateUse, never a second success.
	Create(ctx context.Context, use *domain.TicketUse) error
}
