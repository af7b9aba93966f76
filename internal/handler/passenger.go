package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit/internal/repository"
	"transit/internal/service"
)

// PassengerHandler handles HTTP requests for passenger operations.
type PassengerHandler struct {
	passengerRepo repository.PassengerRepository
	query         *service.QueryService
}

// NewPassengerHandler creates a new PassengerHandler.
func NewPassengerHandler(passengerRepo repository.PassengerRepository, query *service.QueryService) *PassengerHandler {
	return &PassengerHandler{
		passengerRepo: passengerRepo,
		query:         query,
	}
}

// RenameRequest is the HTTP request body for updating a passenger's name.
type RenameRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PassengerResponse is the HTTP response for passenger reads and updates.
type PassengerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Rename handles PUT /v1/passengers/:id/name
func (h *PassengerHandler) Rename(c *gin.Context) {
	passengerID := c.Param("id")

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		respondError(c, service.ErrInvalidPassengerName)
		return
	}

	if err := h.passengerRepo.UpdateName(c.Request.Context(), passengerID, req.FirstName, req.LastName); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PassengerResponse{
		ID:        passengerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

// GetTickets handles GET /v1/passengers/:id/tickets
func (h *PassengerHandler) GetTickets(c *gin.Context) {
	passengerID := c.Param("id")

	tickets, err := h.query.PassengerTickets(c.Request.Context(), passengerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tickets)
}
