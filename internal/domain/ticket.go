package domain

import (
	"errors"
	"time"
)

// TicketKind identifies the two ticket products sold by the operator.
type TicketKind string

const (
	TicketKindOneTime TicketKind = "ONE_TIME"
	TicketKindWeekly  TicketKind = "WEEKLY"
)

// OneTimeTicket is consumable for exactly one ride validation, ever.
type OneTimeTicket struct {
	ID          string
	PassengerID string
	IssueDate   time.Time
}

// WeeklyTicket is valid for unlimited validations from its issue date
// onward. No upper time bound is enforced anywhere in the system.
type WeeklyTicket struct {
	ID          string
	PassengerID string
	IssueDate   time.Time
}

// ErrInvalidTicketRef is returned when a TicketRef does not reference
// exactly one ticket.
var ErrInvalidTicketRef = errors.New("ticket reference must name exactly one ticket")

// TicketRef is a tagged reference to a ticket of either kind. A use record
// must reference exactly one ticket; the tag makes that invariant checkable
// before anything reaches storage.
type TicketRef struct {
	Kind     TicketKind
	TicketID string
}

// OneTimeRef builds a reference to a one-time ticket.
func OneTimeRef(ticketID string) TicketRef {
	return TicketRef{Kind: TicketKindOneTime, TicketID: ticketID}
}

// WeeklyRef builds a reference to a weekly ticket.
func WeeklyRef(ticketID string) TicketRef {
	return TicketRef{Kind: TicketKindWeekly, TicketID: ticketID}
}

// Validate reports whether the reference names exactly one ticket of a
// known kind.
func (r TicketRef) Validate() error {
	if r.TicketID == "" {
		return ErrInvalidTicketRef
	}
	switch r.Kind {
	case TicketKindOneTime, TicketKindWeekly:
		return nil
	default:
		return ErrInvalidTicketRef
	}
}

// TicketUse records a consumed ticket and the ride it was validated
// against. Use records are immutable and never deleted.
type TicketUse struct {
	ID     string
	RideID string
	Ref    TicketRef
}

// TicketSummary is the projection of a ticket exposed on read paths.
type TicketSummary struct {
	TicketID  string    `json:"ticket_id"`
	IssueDate time.Time `json:"issue_date"`
}

// PassengerTickets groups a passenger's tickets by kind.
type PassengerTickets struct {
	OneTime []TicketSummary `json:"one_time"`
	Weekly  []TicketSummary `json:"weekly"`
}
