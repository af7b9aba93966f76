package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"transit/internal/domain"
	"transit/internal/service"
)

// RideHandler handles HTTP requests for ride scheduling and schedule reads.
type RideHandler struct {
	schedule *service.ScheduleService
	query    *service.QueryService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(schedule *service.ScheduleService, query *service.QueryService) *RideHandler {
	return &RideHandler{
		schedule: schedule,
		query:    query,
	}
}

// ScheduleRideRequest is the HTTP request body for scheduling a ride.
type ScheduleRideRequest struct {
	LicensePlate string `json:"license_plate"`
	RouteNo      int    `json:"route_no"`
	LicenseID    string `json:"license_id"`
	StartTime    string `json:"start_time"` // RFC3339
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	ID           string `json:"id"`
	LicensePlate string `json:"license_plate"`
	RouteNo      int    `json:"route_no"`
	LicenseID    string `json:"license_id"`
	StartTime    string `json:"start_time"`
}

func toRideResponse(ride *domain.Ride) RideResponse {
	return RideResponse{
		ID:           ride.ID,
		LicensePlate: ride.LicensePlate,
		RouteNo:      ride.RouteNo,
		LicenseID:    ride.LicenseID,
		StartTime:    ride.StartTime.Format(time.RFC3339),
	}
}

func toRideResponses(rides []*domain.Ride) []RideResponse {
	out := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		out = append(out, toRideResponse(ride))
	}
	return out
}

// Schedule handles POST /v1/rides
func (h *RideHandler) Schedule(c *gin.Context) {
	var req ScheduleRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_time must be RFC3339"})
		return
	}

	ride, err := h.schedule.ScheduleRide(c.Request.Context(), service.ScheduleRideRequest{
		LicensePlate: req.LicensePlate,
		RouteNo:      req.RouteNo,
		LicenseID:    req.LicenseID,
		StartTime:    startTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// ListAfter handles GET /v1/rides?after=<RFC3339>
func (h *RideHandler) ListAfter(c *gin.Context) {
	after, ok := parseAfter(c)
	if !ok {
		return
	}

	rides, err := h.query.RidesAfter(c.Request.Context(), after)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"rides": toRideResponses(rides)})
}

// DriverSchedule handles GET /v1/drivers/:license_id/schedule?after=<RFC3339>
func (h *RideHandler) DriverSchedule(c *gin.Context) {
	licenseID := c.Param("license_id")

	after, ok := parseAfter(c)
	if !ok {
		return
	}

	rides, err := h.query.DriverSchedule(c.Request.Context(), licenseID, after)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"rides": toRideResponses(rides)})
}

// parseAfter reads the optional after query parameter. A missing parameter
// means the zero time, which matches every ride. Reports false after writing
// the error response itself.
func parseAfter(c *gin.Context) (time.Time, bool) {
	raw := c.Query("after")
	if raw == "" {
		return time.Time{}, true
	}

	after, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "after must be RFC3339"})
		return time.Time{}, false
	}

	return after, true
}
