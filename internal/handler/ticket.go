package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"transit/internal/service"
)

// TicketHandler handles HTTP requests for ticket issuance and validation.
type TicketHandler struct {
	issuer    *service.IssuerService
	validator *service.ValidatorService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(issuer *service.IssuerService, validator *service.ValidatorService) *TicketHandler {
	return &TicketHandler{
		issuer:    issuer,
		validator: validator,
	}
}

// IssueTicketRequest is the HTTP request body for issuing a ticket.
type IssueTicketRequest struct {
	PassengerID string `json:"passenger_id"`
	IssueDate   string `json:"issue_date,omitempty"` // RFC3339; defaults to now
}

// IssueTicketResponse is the HTTP response for issuing a ticket.
type IssueTicketResponse struct {
	TicketID    string `json:"ticket_id"`
	PassengerID string `json:"passenger_id"`
	IssueDate   string `json:"issue_date"`
}

// ValidateTicketRequest is the HTTP request body for validating a ticket.
type ValidateTicketRequest struct {
	RideID string `json:"ride_id"`
}

// ValidateTicketResponse is the HTTP response for a successful validation.
type ValidateTicketResponse struct {
	OK       bool   `json:"ok"`
	UseID    string `json:"use_id"`
	TicketID string `json:"ticket_id"`
	RideID   string `json:"ride_id"`
}

// IssueOneTime handles POST /v1/tickets/one-time
func (h *TicketHandler) IssueOneTime(c *gin.Context) {
	req, ok := bindIssueRequest(c)
	if !ok {
		return
	}

	ticket, err := h.issuer.IssueOneTime(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, IssueTicketResponse{
		TicketID:    ticket.ID,
		PassengerID: ticket.PassengerID,
		IssueDate:   ticket.IssueDate.Format(time.RFC3339),
	})
}

// IssueWeekly handles POST /v1/tickets/weekly
func (h *TicketHandler) IssueWeekly(c *gin.Context) {
	req, ok := bindIssueRequest(c)
	if !ok {
		return
	}

	ticket, err := h.issuer.IssueWeekly(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, IssueTicketResponse{
		TicketID:    ticket.ID,
		PassengerID: ticket.PassengerID,
		IssueDate:   ticket.IssueDate.Format(time.RFC3339),
	})
}

// ValidateOneTime handles POST /v1/tickets/one-time/:id/validate
func (h *TicketHandler) ValidateOneTime(c *gin.Context) {
	ticketID := c.Param("id")

	var req ValidateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	use, err := h.validator.ValidateOneTime(c.Request.Context(), ticketID, req.RideID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ValidateTicketResponse{
		OK:       true,
		UseID:    use.ID,
		TicketID: use.Ref.TicketID,
		RideID:   use.RideID,
	})
}

// ValidateWeekly handles POST /v1/tickets/weekly/:id/validate
func (h *TicketHandler) ValidateWeekly(c *gin.Context) {
	ticketID := c.Param("id")

	var req ValidateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	use, err := h.validator.ValidateWeekly(c.Request.Context(), ticketID, req.RideID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ValidateTicketResponse{
		OK:       true,
		UseID:    use.ID,
		TicketID: use.Ref.TicketID,
		RideID:   use.RideID,
	})
}

// bindIssueRequest parses the shared issuance request body. Reports false
// after writing the error response itself.
func bindIssueRequest(c *gin.Context) (service.IssueTicketRequest, bool) {
	var req IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return service.IssueTicketRequest{}, false
	}

	var issueDate time.Time
	if req.IssueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.IssueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "issue_date must be RFC3339"})
			return service.IssueTicketRequest{}, false
		}
		issueDate = parsed
	}

	return service.IssueTicketRequest{
		PassengerID: req.PassengerID,
		IssueDate:   issueDate,
	}, true
}
