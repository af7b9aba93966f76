package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"transit/internal/domain"
	"transit/internal/repository"
)

// ScheduleService records scheduled rides. It is a thin insert path: the
// database's foreign keys hold the bus, route, and driver references
// together.
type ScheduleService struct {
	rideRepo repository.RideRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(rideRepo repository.RideRepository) *ScheduleService {
	return &ScheduleService{rideRepo: rideRepo}
}

// ScheduleRideRequest contains the parameters for scheduling a ride.
type ScheduleRideRequest struct {
	LicensePlate string
	RouteNo      int
	LicenseID    string
	StartTime    time.Time
}

// ScheduleRide creates a new ride record.
func (s *ScheduleService) ScheduleRide(ctx context.Context, req ScheduleRideRequest) (*domain.Ride, error) {
	if req.LicensePlate == "" || len(req.LicensePlate) > 8 {
		return nil, ErrInvalidLicensePlate
	}

	if req.LicenseID == "" {
		return nil, ErrInvalidLicenseID
	}

	if req.StartTime.IsZero() {
		return nil, ErrInvalidStartTime
	}

	ride := &domain.Ride{
		ID:           uuid.New().String(),
		LicensePlate: req.LicensePlate,
		RouteNo:      req.RouteNo,
		LicenseID:    req.LicenseID,
		StartTime:    req.StartTime,
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	return ride, nil
}
