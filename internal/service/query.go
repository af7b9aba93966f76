package service

import (
	"context"
	"time"

	"transit/internal/domain"
	"transit/internal/redis"
	"transit/internal/repository"
)

// QueryService serves the read-only aggregation paths: passenger ticket
// listings, the route usage report, and ride lookups.
type QueryService struct {
	oneTimeRepo repository.OneTimeTicketRepository
	weeklyRepo  repository.WeeklyTicketRepository
	rideRepo    repository.RideRepository
	cache       redis.CacheStoreInterface
}

// NewQueryService creates a new QueryService. cache may be nil.
func NewQueryService(
	oneTimeRepo repository.OneTimeTicketRepository,
	weeklyRepo repository.WeeklyTicketRepository,
	rideRepo repository.RideRepository,
	cache redis.CacheStoreInterface,
) *QueryService {
	return &QueryService{
		oneTimeRepo: oneTimeRepo,
		weeklyRepo:  weeklyRepo,
		rideRepo:    rideRepo,
		cache:       cache,
	}
}

// PassengerTickets returns a passenger's tickets grouped by kind. A
// passenger with no tickets gets empty lists, not an error.
func (s *QueryService) PassengerTickets(ctx context.Context, passengerID string) (*domain.PassengerTickets, error) {
	if passengerID == "" {
		return nil, ErrInvalidPassengerID
	}

	if s.cache != nil {
		cached, err := s.cache.GetPassengerTickets(ctx, passengerID)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	oneTime, err := s.oneTimeRepo.GetByPassengerID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	weekly, err := s.weeklyRepo.GetByPassengerID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	tickets := &domain.PassengerTickets{
		OneTime: make([]domain.TicketSummary, 0, len(oneTime)),
		Weekly:  make([]domain.TicketSummary, 0, len(weekly)),
	}
	for _, t := range oneTime {
		tickets.OneTime = append(tickets.OneTime, domain.TicketSummary{TicketID: t.ID, IssueDate: t.IssueDate})
	}
	for _, t := range weekly {
		tickets.Weekly = append(tickets.Weekly, domain.TicketSummary{TicketID: t.ID, IssueDate: t.IssueDate})
	}

	if s.cache != nil {
		_ = s.cache.SetPassengerTickets(ctx, passengerID, tickets)
	}

	return tickets, nil
}

// RouteUsage returns the per-route usage report. The report counts rides
// scheduled on each route, not ticket validations; the historical column
// name "tickets sold" is kept for compatibility.
func (s *QueryService) RouteUsage(ctx context.Context) ([]domain.RouteUsage, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRouteUsage(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	usage, err := s.rideRepo.CountByRoute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetRouteUsage(ctx, usage)
	}

	return usage, nil
}

// RidesAfter returns all rides starting strictly after the given time.
func (s *QueryService) RidesAfter(ctx context.Context, after time.Time) ([]*domain.Ride, error) {
	return s.rideRepo.ListAfter(ctx, after)
}

// DriverSchedule returns a driver's rides starting strictly after the
// given time.
func (s *QueryService) DriverSchedule(ctx context.Context, licenseID string, after time.Time) ([]*domain.Ride, error) {
	if licenseID == "" {
		return nil, ErrInvalidLicenseID
	}

	return s.rideRepo.ListByDriverAfter(ctx, licenseID, after)
}
