// Package metrics collects and exposes Prometheus metrics for the
// ticketing service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Validation outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeAlreadyUsed = "already_used"
	OutcomeNotYetValid = "not_yet_valid"
	OutcomeError       = "error"
)

// Recorder is the metrics interface consumed by the services.
type Recorder interface {
	RecordTicketIssued(kind string)
	RecordValidation(kind, outcome string)
}

// Collector is a Prometheus-backed Recorder.
type Collector struct {
	ticketsIssued *prometheus.CounterVec
	validations   *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ticketsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transit_tickets_issued_total",
			Help: "Tickets issued, by kind.",
		}, []string{"kind"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transit_ticket_validations_total",
			Help: "Ticket validation attempts, by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	reg.MustRegister(
		c.ticketsIssued,
		c.validations,
	)

	return c
}

// RecordTicketIssued records one issued ticket.
func (c *Collector) RecordTicketIssued(kind string) {
	c.ticketsIssued.WithLabelValues(kind).Inc()
}

// RecordValidation records one validation attempt and its outcome.
func (c *Collector) RecordValidation(kind, outcome string) {
	c.validations.WithLabelValues(kind, outcome).Inc()
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
