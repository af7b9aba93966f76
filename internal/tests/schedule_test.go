package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"transit/internal/service"
)

func TestScheduleRide_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	rideRepo := NewMockRideRepository()
	schedule := service.NewScheduleService(rideRepo)

	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	ride, err := schedule.ScheduleRide(context.Background(), service.ScheduleRideRequest{
		LicensePlate: "AB1234AB",
		RouteNo:      100,
		LicenseID:    "drv-1",
		StartTime:    start,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if ride.ID == "" {
		t.Error("expected ride ID to be set")
	}
	if ride.RouteNo != 100 || ride.LicensePlate != "AB1234AB" || ride.LicenseID != "drv-1" {
		t.Errorf("unexpected ride fields: %+v", ride)
	}
	if !ride.StartTime.Equal(start) {
		t.Errorf("expected start time %v, got %v", start, ride.StartTime)
	}
	if atomic.LoadInt32(&rideRepo.CreateCallCount) != 1 {
		t.Error("expected one repository write")
	}
}

func TestScheduleRide_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		req     service.ScheduleRideRequest
		wantErr error
	}{
		{
			name:    "missing license plate",
			req:     service.ScheduleRideRequest{RouteNo: 100, LicenseID: "drv-1", StartTime: start},
			wantErr: service.ErrInvalidLicensePlate,
		},
		{
			name:    "license plate too long",
			req:     service.ScheduleRideRequest{LicensePlate: "AB1234ABX", RouteNo: 100, LicenseID: "drv-1", StartTime: start},
			wantErr: service.ErrInvalidLicensePlate,
		},
		{
			name:    "missing driver license",
			req:     service.ScheduleRideRequest{LicensePlate: "AB1234AB", RouteNo: 100, StartTime: start},
			wantErr: service.ErrInvalidLicenseID,
		},
		{
			name:    "missing start time",
			req:     service.ScheduleRideRequest{LicensePlate: "AB1234AB", RouteNo: 100, LicenseID: "drv-1"},
			wantErr: service.ErrInvalidStartTime,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rideRepo := NewMockRideRepository()
			schedule := service.NewScheduleService(rideRepo)

			_, err := schedule.ScheduleRide(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
			if atomic.LoadInt32(&rideRepo.CreateCallCount) != 0 {
				t.Error("expected no repository write for rejected request")
			}
		})
	}
}
