package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"transit/internal/domain"
	"transit/internal/metrics"
	"transit/internal/redis"
	"transit/internal/repository"
)

// Ensure mocks satisfy the interfaces they stand in for.
var (
	_ repository.OneTimeTicketRepository = (*MockOneTimeTicketRepository)(nil)
	_ repository.WeeklyTicketRepository  = (*MockWeeklyTicketRepository)(nil)
	_ repository.TicketUseRepository     = (*MockTicketUseRepository)(nil)
	_ repository.RideRepository          = (*MockRideRepository)(nil)
	_ repository.PassengerRepository     = (*MockPassengerRepository)(nil)
	_ redis.CacheStoreInterface          = (*MockCacheStore)(nil)
	_ metrics.Recorder                   = (*MockRecorder)(nil)
)

// ──────────────────────────────────────────────
// MOCK ONE-TIME TICKET REPOSITORY
// ──────────────────────────────────────────────

// MockOneTimeTicketRepository is a mock implementation of
// OneTimeTicketRepository.
type MockOneTimeTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*domain.OneTimeTicket

	// Counters for verification
	CreateCallCount  int32
	GetByIDCallCount int32

	// Error injection
	CreateError  error
	GetByIDError error
}

// NewMockOneTimeTicketRepository creates a new mock one-time ticket
// repository.
func NewMockOneTimeTicketRepository() *MockOneTimeTicketRepository {
	return &MockOneTimeTicketRepository{
		tickets: make(map[string]*domain.OneTimeTicket),
	}
}

// AddTicket adds a ticket to the mock repository.
func (m *MockOneTimeTicketRepository) AddTicket(ticket *domain.OneTimeTicket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[ticket.ID] = ticket
}

func (m *MockOneTimeTicketRepository) Create(ctx context.Context, ticket *domain.OneTimeTicket) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *MockOneTimeTicketRepository) GetByID(ctx context.Context, id string) (*domain.OneTimeTicket, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *ticket
	return &copy, nil
}

func (m *MockOneTimeTicketRepository) GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.OneTimeTicket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.OneTimeTicket, 0)
	for _, t := range m.tickets {
		if t.PassengerID == passengerID {
			copy := *t
			result = append(result, &copy)
		}
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK WEEKLY TICKET REPOSITORY
// ──────────────────────────────────────────────

// MockWeeklyTicketRepository is a mock implementation of
// WeeklyTicketRepository.
type MockWeeklyTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*domain.WeeklyTicket

	// Counters for verification
	CreateCallCount  int32
	GetByIDCallCount int32

	// Error injection
	CreateError  error
	GetByIDError error
}

// NewMockWeeklyTicketRepository creates a new mock weekly ticket repository.
func NewMockWeeklyTicketRepository() *MockWeeklyTicketRepository {
	return &MockWeeklyTicketRepository{
		tickets: make(map[string]*domain.WeeklyTicket),
	}
}

// AddTicket adds a ticket to the mock repository.
func (m *MockWeeklyTicketRepository) AddTicket(ticket *domain.WeeklyTicket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[ticket.ID] = ticket
}

func (m *MockWeeklyTicketRepository) Create(ctx context.Context, ticket *domain.WeeklyTicket) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *MockWeeklyTicketRepository) GetByID(ctx context.Context, id string) (*domain.WeeklyTicket, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *ticket
	return &copy, nil
}

func (m *MockWeeklyTicketRepository) GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.WeeklyTicket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.WeeklyTicket, 0)
	for _, t := range m.tickets {
		if t.PassengerID == passengerID {
			copy := *t
			result = append(result, &copy)
		}
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK TICKET USE REPOSITORY
// ──────────────────────────────────────────────

// MockTicketUseRepository is a mock implementation of TicketUseRepository.
// It enforces the same uniqueness rule as the real storage: at most one use
// record per one-time ticket, decided under the same lock as the insert.
type MockTicketUseRepository struct {
	mu          sync.Mutex
	uses        map[string]*domain.TicketUse
	usedOneTime map[string]bool

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockTicketUseRepository creates a new mock ticket use repository.
func NewMockTicketUseRepository() *MockTicketUseRepository {
	return &MockTicketUseRepository{
		uses:        make(map[string]*domain.TicketUse),
		usedOneTime: make(map[string]bool),
	}
}

func (m *MockTicketUseRepository) Create(ctx context.Context, use *domain.TicketUse) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	if err := use.Ref.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if use.Ref.Kind == domain.TicketKindOneTime {
		if m.usedOneTime[use.Ref.TicketID] {
			return repository.ErrDuplicateUse
		}
		m.usedOneTime[use.Ref.TicketID] = true
	}
	m.uses[use.ID] = use
	return nil
}

// UseCount returns the number of recorded uses (for test assertions).
func (m *MockTicketUseRepository) UseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.uses)
}

// UsesForTicket returns the recorded uses referencing a ticket (for test
// assertions).
func (m *MockTicketUseRepository) UsesForTicket(ticketID string) []*domain.TicketUse {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.TicketUse, 0)
	for _, u := range m.uses {
		if u.Ref.TicketID == ticketID {
			result = append(result, u)
		}
	}
	return result
}

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockRideRepository is a mock implementation of RideRepository.
type MockRideRepository struct {
	mu     sync.RWMutex
	rides  map[string]*domain.Ride
	routes []int

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{
		rides: make(map[string]*domain.Ride),
	}
}

// AddRide adds a ride to the mock repository.
func (m *MockRideRepository) AddRide(ride *domain.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
}

// AddRoute registers a route so CountByRoute can report it even with zero
// rides, mirroring the LEFT JOIN in the real query.
func (m *MockRideRepository) AddRoute(routeNo int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = append(m.routes, routeNo)
}

func (m *MockRideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
	return nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ride, ok := m.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *ride
	return &copy, nil
}

func (m *MockRideRepository) ListAfter(ctx context.Context, after time.Time) ([]*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Ride, 0)
	for _, r := range m.rides {
		if r.StartTime.After(after) {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockRideRepository) ListByDriverAfter(ctx context.Context, licenseID string, after time.Time) ([]*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Ride, 0)
	for _, r := range m.rides {
		if r.LicenseID == licenseID && r.StartTime.After(after) {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockRideRepository) CountByRoute(ctx context.Context) ([]domain.RouteUsage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[int]int)
	for _, routeNo := range m.routes {
		counts[routeNo] = 0
	}
	for _, r := range m.rides {
		counts[r.RouteNo]++
	}
	result := make([]domain.RouteUsage, 0, len(counts))
	for routeNo, count := range counts {
		result = append(result, domain.RouteUsage{RouteNo: routeNo, TicketsSold: count})
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK PASSENGER REPOSITORY
// ──────────────────────────────────────────────

// MockPassengerRepository is a mock implementation of PassengerRepository.
type MockPassengerRepository struct {
	mu         sync.RWMutex
	passengers map[string]*domain.Passenger

	// Counters for verification
	CreateCallCount     int32
	UpdateNameCallCount int32

	// Error injection
	CreateError     error
	UpdateNameError error
}

// NewMockPassengerRepository creates a new mock passenger repository.
func NewMockPassengerRepository() *MockPassengerRepository {
	return &MockPassengerRepository{
		passengers: make(map[string]*domain.Passenger),
	}
}

// AddPassenger adds a passenger to the mock repository.
func (m *MockPassengerRepository) AddPassenger(passenger *domain.Passenger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers[passenger.ID] = passenger
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers[passenger.ID] = passenger
	return nil
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	passenger, ok := m.passengers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *passenger
	return &copy, nil
}

func (m *MockPassengerRepository) UpdateName(ctx context.Context, id, firstName, lastName string) error {
	atomic.AddInt32(&m.UpdateNameCallCount, 1)
	if m.UpdateNameError != nil {
		return m.UpdateNameError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	passenger, ok := m.passengers[id]
	if !ok {
		return repository.ErrNotFound
	}
	passenger.FirstName = firstName
	passenger.LastName = lastName
	return nil
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is a mock implementation of CacheStoreInterface.
type MockCacheStore struct {
	mu               sync.RWMutex
	passengerTickets map[string]*domain.PassengerTickets
	routeUsage       []domain.RouteUsage

	// Counters for verification
	GetPassengerTicketsCallCount int32
	SetPassengerTicketsCallCount int32
	InvalidateCallCount          int32
	GetRouteUsageCallCount       int32
	SetRouteUsageCallCount       int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		passengerTickets: make(map[string]*domain.PassengerTickets),
	}
}

func (m *MockCacheStore) GetPassengerTickets(ctx context.Context, passengerID string) (*domain.PassengerTickets, error) {
	atomic.AddInt32(&m.GetPassengerTicketsCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.passengerTickets[passengerID], nil
}

func (m *MockCacheStore) SetPassengerTickets(ctx context.Context, passengerID string, tickets *domain.PassengerTickets) error {
	atomic.AddInt32(&m.SetPassengerTicketsCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengerTickets[passengerID] = tickets
	return nil
}

func (m *MockCacheStore) InvalidatePassengerTickets(ctx context.Context, passengerID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.passengerTickets, passengerID)
	return nil
}

func (m *MockCacheStore) GetRouteUsage(ctx context.Context) ([]domain.RouteUsage, error) {
	atomic.AddInt32(&m.GetRouteUsageCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.routeUsage, nil
}

func (m *MockCacheStore) SetRouteUsage(ctx context.Context, usage []domain.RouteUsage) error {
	atomic.AddInt32(&m.SetRouteUsageCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routeUsage = usage
	return nil
}

// ──────────────────────────────────────────────
// MOCK METRICS RECORDER
// ──────────────────────────────────────────────

// MockRecorder is a mock metrics recorder counting observations by label.
type MockRecorder struct {
	mu          sync.Mutex
	Issued      map[string]int
	Validations map[string]int
}

// NewMockRecorder creates a new mock recorder.
func NewMockRecorder() *MockRecorder {
	return &MockRecorder{
		Issued:      make(map[string]int),
		Validations: make(map[string]int),
	}
}

func (m *MockRecorder) RecordTicketIssued(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Issued[kind]++
}

func (m *MockRecorder) RecordValidation(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Validations[kind+"/"+outcome]++
}

// ValidationCount returns the recorded count for a kind/outcome pair.
func (m *MockRecorder) ValidationCount(kind, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Validations[kind+"/"+outcome]
}
