package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"transit/internal/domain"
	"transit/internal/metrics"
	"transit/internal/redis"
	"transit/internal/repository"
)

// IssuerService creates tickets. Ticket identifiers are drawn from a
// single UUID space across both kinds.
type IssuerService struct {
	oneTimeRepo repository.OneTimeTicketRepository
	weeklyRepo  repository.WeeklyTicketRepository
	cache       redis.CacheStoreInterface
	metrics     metrics.Recorder
	now         func() time.Time
}

// NewIssuerService creates a new IssuerService. cache and recorder may be
// nil.
func NewIssuerService(
	oneTimeRepo repository.OneTimeTicketRepository,
	weeklyRepo repository.WeeklyTicketRepository,
	cache redis.CacheStoreInterface,
	recorder metrics.Recorder,
) *IssuerService {
	return &IssuerService{
		oneTimeRepo: oneTimeRepo,
		weeklyRepo:  weeklyRepo,
		cache:       cache,
		metrics:     recorder,
		now:         time.Now,
	}
}

// WithClock replaces the service's time source. Intended for tests.
func (s *IssuerService) WithClock(now func() time.Time) *IssuerService {
	s.now = now
	return s
}

// IssueTicketRequest contains the parameters for issuing a ticket.
type IssueTicketRequest struct {
	PassengerID string
	IssueDate   time.Time
}

// IssueOneTime issues a one-time ticket. The passenger is not required to
// exist; no referential pre-check is performed.
func (s *IssuerService) IssueOneTime(ctx context.Context, req IssueTicketRequest) (*domain.OneTimeTicket, error) {
	if req.PassengerID == "" {
		return nil, ErrInvalidPassengerID
	}

	ticket := &domain.OneTimeTicket{
		ID:          uuid.New().String(),
		PassengerID: req.PassengerID,
		IssueDate:   s.issueDate(req),
	}

	if err := s.oneTimeRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.afterIssue(ctx, domain.TicketKindOneTime, req.PassengerID)

	return ticket, nil
}

// IssueWeekly issues a weekly ticket.
func (s *IssuerService) IssueWeekly(ctx context.Context, req IssueTicketRequest) (*domain.WeeklyTicket, error) {
	if req.PassengerID == "" {
		return nil, ErrInvalidPassengerID
	}

	ticket := &domain.WeeklyTicket{
		ID:          uuid.New().String(),
		PassengerID: req.PassengerID,
		IssueDate:   s.issueDate(req),
	}

	if err := s.weeklyRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.afterIssue(ctx, domain.TicketKindWeekly, req.PassengerID)

	return ticket, nil
}

// issueDate returns the caller-supplied issue date, defaulting to the
// issuance moment.
func (s *IssuerService) issueDate(req IssueTicketRequest) time.Time {
	if req.IssueDate.IsZero() {
		return s.now()
	}
	return req.IssueDate
}

// afterIssue drops the passenger's cached ticket listing and records the
// issuance. Cache errors never fail the write.
func (s *IssuerService) afterIssue(ctx context.Context, kind domain.TicketKind, passengerID string) {
	if s.cache != nil {
		_ = s.cache.InvalidatePassengerTickets(ctx, passengerID)
	}
	if s.metrics != nil {
		s.metrics.RecordTicketIssued(string(kind))
	}
}
