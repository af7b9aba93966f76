package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"transit/internal/handler"
	"transit/internal/metrics"
	"transit/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	TicketHandler    *handler.TicketHandler
	PassengerHandler *handler.PassengerHandler
	RideHandler      *handler.RideHandler
	ReportHandler    *handler.ReportHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
	Gatherer         prometheus.Gatherer
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	if deps.RedisClient != nil {
		router.Use(middleware.Idempotency(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint.
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Ticket routes.
		tickets := v1.Group("/tickets")
		{
			tickets.POST("/one-time", deps.TicketHandler.IssueOneTime)
			tickets.POST("/weekly", deps.TicketHandler.IssueWeekly)
			tickets.POST("/one-time/:id/validate", deps.TicketHandler.ValidateOneTime)
			tickets.POST("/weekly/:id/validate", deps.TicketHandler.ValidateWeekly)
		}

		// Passenger routes.
		passengers := v1.Group("/passengers")
		{
			passengers.GET("/:id/tickets", deps.PassengerHandler.GetTickets)
			passengers.PUT("/:id/name", deps.PassengerHandler.Rename)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.Schedule)
			rides.GET("", deps.RideHandler.ListAfter)
		}

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.GET("/:license_id/schedule", deps.RideHandler.DriverSchedule)
		}

		// Report routes.
		reports := v1.Group("/reports")
		{
			reports.GET("/route-usage", deps.ReportHandler.RouteUsage)
		}
	}

	return router
}
