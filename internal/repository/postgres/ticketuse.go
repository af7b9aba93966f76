package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"transit/internal/domain"
	"transit/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = pq.ErrorCode("23505")

// TicketUseRepository is a PostgreSQL implementation of
// repository.TicketUseRepository.
type TicketUseRepository struct {
	q Querier
}

// NewTicketUseRepository creates a new PostgreSQL ticket-use repository.
func NewTicketUseRepository(db *sql.DB) *TicketUseRepository {
	return &TicketUseRepository{q: db}
}

// NewTicketUseRepositoryWithTx creates a ticket-use repository using a
// transaction.
func NewTicketUseRepositoryWithTx(tx *sql.Tx) *TicketUseRepository {
	return &TicketUseRepository{q: tx}
}

// Create appends a use record. The partial unique index on o_ticket_id
// makes the insert itself the check-and-record step for one-time tickets:
// a concurrent duplicate loses the index race and gets ErrDuplicateUse.
func (r *TicketUseRepository) Create(ctx context.Context, use *domain.TicketUse) error {
	if err := use.Ref.Validate(); err != nil {
		return err
	}

	var oneTimeID, weeklyID sql.NullString
	switch use.Ref.Kind {
	case domain.TicketKindOneTime:
		oneTimeID = sql.NullString{String: use.Ref.TicketID, Valid: true}
	case domain.TicketKindWeekly:
		weeklyID = sql.NullString{String: use.Ref.TicketID, Valid: true}
	}

	query := `
		INSERT INTO ticket_uses (id, ride_id, o_ticket_id, w_ticket_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.q.ExecContext(ctx, query, use.ID, use.RideID, oneTimeID, weeklyID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrDuplicateUse
		}
		return err
	}

	return nil
}
