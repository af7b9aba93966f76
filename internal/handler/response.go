package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transit/internal/repository"
	"transit/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Terminal business outcomes of validation
	case errors.Is(err, service.ErrTicketAlreadyUsed):
		return http.StatusConflict
	case errors.Is(err, service.ErrTicketNotYetValid):
		return http.StatusBadRequest

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidPassengerID),
		errors.Is(err, service.ErrInvalidTicketID),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidLicensePlate),
		errors.Is(err, service.ErrInvalidLicenseID),
		errors.Is(err, service.ErrInvalidStartTime),
		errors.Is(err, service.ErrInvalidPassengerName):
		return http.StatusBadRequest

	// Default to internal server error (storage failures land here)
	default:
		return http.StatusInternalServerError
	}
}
