package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"transit/internal/domain"
	"transit/internal/metrics"
	"transit/internal/repository"
)

// ValidatorService decides whether a ticket may be consumed for a ride and
// records the consumption. It holds no state of its own: every decision
// re-reads current storage.
type ValidatorService struct {
	oneTimeRepo repository.OneTimeTicketRepository
	weeklyRepo  repository.WeeklyTicketRepository
	useRepo     repository.TicketUseRepository
	metrics     metrics.Recorder
	now         func() time.Time
}

// NewValidatorService creates a new ValidatorService. recorder may be nil.
func NewValidatorService(
	oneTimeRepo repository.OneTimeTicketRepository,
	weeklyRepo repository.WeeklyTicketRepository,
	useRepo repository.TicketUseRepository,
	recorder metrics.Recorder,
) *ValidatorService {
	return &ValidatorService{
		oneTimeRepo: oneTimeRepo,
		weeklyRepo:  weeklyRepo,
		useRepo:     useRepo,
		metrics:     recorder,
		now:         time.Now,
	}
}

// WithClock replaces the service's time source. Intended for tests.
func (s *ValidatorService) WithClock(now func() time.Time) *ValidatorService {
	s.now = now
	return s
}

// ValidateOneTime consumes a one-time ticket for a ride. The reuse check
// and the use-record insert are a single atomic step: the storage layer's
// uniqueness rule on one-time references decides, so concurrent
// validations of the same ticket yield exactly one success. A validation
// retried after its use was recorded deterministically returns
// ErrTicketAlreadyUsed.
func (s *ValidatorService) ValidateOneTime(ctx context.Context, ticketID, rideID string) (*domain.TicketUse, error) {
	if ticketID == "" {
		return nil, ErrInvalidTicketID
	}
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	if _, err := s.oneTimeRepo.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.record(domain.TicketKindOneTime, metrics.OutcomeNotFound)
		} else {
			s.record(domain.TicketKindOneTime, metrics.OutcomeError)
		}
		return nil, err
	}

	use := &domain.TicketUse{
		ID:     uuid.New().String(),
		RideID: rideID,
		Ref:    domain.OneTimeRef(ticketID),
	}

	if err := s.useRepo.Create(ctx, use); err != nil {
		if errors.Is(err, repository.ErrDuplicateUse) {
			s.record(domain.TicketKindOneTime, metrics.OutcomeAlreadyUsed)
			return nil, ErrTicketAlreadyUsed
		}
		s.record(domain.TicketKindOneTime, metrics.OutcomeError)
		return nil, err
	}

	s.record(domain.TicketKindOneTime, metrics.OutcomeOK)
	return use, nil
}

// ValidateWeekly consumes a weekly ticket for a ride. Weekly tickets are
// valid from their issue time onward with no upper bound and no use limit,
// so the append needs no atomicity beyond a correct insert.
func (s *ValidatorService) ValidateWeekly(ctx context.Context, ticketID, rideID string) (*domain.TicketUse, error) {
	if ticketID == "" {
		return nil, ErrInvalidTicketID
	}
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	ticket, err := s.weeklyRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.record(domain.TicketKindWeekly, metrics.OutcomeNotFound)
		} else {
			s.record(domain.TicketKindWeekly, metrics.OutcomeError)
		}
		return nil, err
	}

	if s.now().Before(ticket.IssueDate) {
		s.record(domain.TicketKindWeekly, metrics.OutcomeNotYetValid)
		return nil, ErrTicketNotYetValid
	}

	use := &domain.TicketUse{
		ID:     uuid.New().String(),
		RideID: rideID,
		Ref:    domain.WeeklyRef(ticketID),
	}

	if err := s.useRepo.Create(ctx, use); err != nil {
		s.record(domain.TicketKindWeekly, metrics.OutcomeError)
		return nil, err
	}

	s.record(domain.TicketKindWeekly, metrics.OutcomeOK)
	return use, nil
}

func (s *ValidatorService) record(kind domain.TicketKind, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordValidation(string(kind), outcome)
	}
}
