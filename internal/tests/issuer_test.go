package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"transit/internal/domain"
	"transit/internal/service"
)

func newIssuerFixture() (*service.IssuerService, *MockOneTimeTicketRepository, *MockWeeklyTicketRepository, *MockCacheStore, *MockRecorder) {
	oneTimeRepo := NewMockOneTimeTicketRepository()
	weeklyRepo := NewMockWeeklyTicketRepository()
	cache := NewMockCacheStore()
	recorder := NewMockRecorder()
	issuer := service.NewIssuerService(oneTimeRepo, weeklyRepo, cache, recorder)
	return issuer, oneTimeRepo, weeklyRepo, cache, recorder
}

func TestIssueOneTime_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	issuer, _, _, _, recorder := newIssuerFixture()

	issueDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticket, err := issuer.IssueOneTime(context.Background(), service.IssueTicketRequest{
		PassengerID: "passenger-7",
		IssueDate:   issueDate,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if ticket.ID == "" {
		t.Error("expected ticket ID to be set")
	}
	if ticket.PassengerID != "passenger-7" {
		t.Errorf("expected passenger ID passenger-7, got %s", ticket.PassengerID)
	}
	if !ticket.IssueDate.Equal(issueDate) {
		t.Errorf("expected issue date %v, got %v", issueDate, ticket.IssueDate)
	}
	if recorder.Issued["ONE_TIME"] != 1 {
		t.Error("expected one issued ticket recorded")
	}
}

func TestIssueTicket_MissingIssueDate_DefaultsToNow(t *testing.T) {
	t.Parallel()

	issuer, _, _, _, _ := newIssuerFixture()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	issuer.WithClock(NewFakeClock(now).Now)

	ticket, err := issuer.IssueWeekly(context.Background(), service.IssueTicketRequest{
		PassengerID: "passenger-7",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !ticket.IssueDate.Equal(now) {
		t.Errorf("expected issue date to default to %v, got %v", now, ticket.IssueDate)
	}
}

func TestIssueTicket_MissingPassengerID_Fails(t *testing.T) {
	t.Parallel()

	issuer, oneTimeRepo, weeklyRepo, _, _ := newIssuerFixture()

	if _, err := issuer.IssueOneTime(context.Background(), service.IssueTicketRequest{}); !errors.Is(err, service.ErrInvalidPassengerID) {
		t.Errorf("expected ErrInvalidPassengerID, got: %v", err)
	}
	if _, err := issuer.IssueWeekly(context.Background(), service.IssueTicketRequest{}); !errors.Is(err, service.ErrInvalidPassengerID) {
		t.Errorf("expected ErrInvalidPassengerID, got: %v", err)
	}

	if atomic.LoadInt32(&oneTimeRepo.CreateCallCount) != 0 || atomic.LoadInt32(&weeklyRepo.CreateCallCount) != 0 {
		t.Error("expected no repository writes for rejected requests")
	}
}

func TestIssueTicket_DistinctIDs_AcrossKinds(t *testing.T) {
	t.Parallel()

	issuer, _, _, _, _ := newIssuerFixture()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		oneTime, err := issuer.IssueOneTime(context.Background(), service.IssueTicketRequest{PassengerID: "p-1"})
		if err != nil {
			t.Fatalf("issuance failed: %v", err)
		}
		weekly, err := issuer.IssueWeekly(context.Background(), service.IssueTicketRequest{PassengerID: "p-1"})
		if err != nil {
			t.Fatalf("issuance failed: %v", err)
		}
		// Identifiers are drawn from one space: no collisions across kinds.
		if seen[oneTime.ID] || seen[weekly.ID] {
			t.Fatal("expected unique ticket IDs across both kinds")
		}
		seen[oneTime.ID] = true
		seen[weekly.ID] = true
	}
}

func TestIssueTicket_InvalidatesPassengerCache(t *testing.T) {
	t.Parallel()

	issuer, _, _, cache, _ := newIssuerFixture()

	// Prime the cache, then issue: the listing for that passenger must be
	// dropped so the next read sees the new ticket.
	_ = cache.SetPassengerTickets(context.Background(), "passenger-7", &domain.PassengerTickets{})

	if _, err := issuer.IssueOneTime(context.Background(), service.IssueTicketRequest{PassengerID: "passenger-7"}); err != nil {
		t.Fatalf("issuance failed: %v", err)
	}

	if atomic.LoadInt32(&cache.InvalidateCallCount) != 1 {
		t.Error("expected passenger cache to be invalidated")
	}
	cached, _ := cache.GetPassengerTickets(context.Background(), "passenger-7")
	if cached != nil {
		t.Error("expected cached listing to be gone after issuance")
	}
}

func TestIssueTicket_IssuanceVisibleInListing(t *testing.T) {
	t.Parallel()

	oneTimeRepo := NewMockOneTimeTicketRepository()
	weeklyRepo := NewMockWeeklyTicketRepository()
	issuer := service.NewIssuerService(oneTimeRepo, weeklyRepo, nil, nil)
	query := service.NewQueryService(oneTimeRepo, weeklyRepo, NewMockRideRepository(), nil)

	issueDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticket, err := issuer.IssueOneTime(context.Background(), service.IssueTicketRequest{
		PassengerID: "passenger-7",
		IssueDate:   issueDate,
	})
	if err != nil {
		t.Fatalf("issuance failed: %v", err)
	}

	tickets, err := query.PassengerTickets(context.Background(), "passenger-7")
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}

	if len(tickets.OneTime) != 1 {
		t.Fatalf("expected 1 one-time ticket in listing, got %d", len(tickets.OneTime))
	}
	if tickets.OneTime[0].TicketID != ticket.ID {
		t.Errorf("expected listing to contain %s, got %s", ticket.ID, tickets.OneTime[0].TicketID)
	}
	if !tickets.OneTime[0].IssueDate.Equal(issueDate) {
		t.Errorf("expected listing issue date %v, got %v", issueDate, tickets.OneTime[0].IssueDate)
	}
}

func TestIssueTicket_StorageError_Propagates(t *testing.T) {
	t.Parallel()

	issuer, oneTimeRepo, _, cache, _ := newIssuerFixture()
	oneTimeRepo.CreateError = errors.New("connection reset")

	_, err := issuer.IssueOneTime(context.Background(), service.IssueTicketRequest{PassengerID: "p-1"})
	if err == nil {
		t.Fatal("expected storage error to propagate")
	}
	if atomic.LoadInt32(&cache.InvalidateCallCount) != 0 {
		t.Error("expected no cache invalidation on failed issuance")
	}
}
