package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit/internal/domain"
	"transit/internal/service"
)

// ReportHandler handles HTTP requests for operational reports.
type ReportHandler struct {
	query *service.QueryService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(query *service.QueryService) *ReportHandler {
	return &ReportHandler{query: query}
}

// RouteUsageResponse is one row of the route usage report.
type RouteUsageResponse struct {
	RouteNo     int `json:"route_no"`
	TicketsSold int `json:"tickets_sold"`
}

// RouteUsage handles GET /v1/reports/route-usage
func (h *ReportHandler) RouteUsage(c *gin.Context) {
	usage, err := h.query.RouteUsage(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"routes": toRouteUsageResponses(usage)})
}

func toRouteUsageResponses(usage []domain.RouteUsage) []RouteUsageResponse {
	out := make([]RouteUsageResponse, 0, len(usage))
	for _, row := range usage {
		out = append(out, RouteUsageResponse{
			RouteNo:     row.RouteNo,
			TicketsSold: row.TicketsSold,
		})
	}
	return out
}
