package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"transit/internal/domain"
)

// CacheStore caches derived read-path payloads in Redis. Ticket state is
// never cached: the validator re-reads storage on every decision. Only
// report and listing responses live here.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	PassengerTicketsTTL = 30 * time.Second // Invalidated on issuance; TTL is a backstop
	RouteUsageTTL       = 60 * time.Second // Report drifts one scheduling interval at most
)

// Key prefixes
const (
	passengerTicketsPrefix = "cache:passenger-tickets:"
	routeUsageKey          = "cache:route-usage"
)

// GetPassengerTickets retrieves a passenger's cached ticket listing.
// Returns nil on cache miss.
func (s *CacheStore) GetPassengerTickets(ctx context.Context, passengerID string) (*domain.PassengerTickets, error) {
	key := passengerTicketsPrefix + passengerID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var tickets domain.PassengerTickets
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, err
	}
	return &tickets, nil
}

// SetPassengerTickets stores a passenger's ticket listing.
func (s *CacheStore) SetPassengerTickets(ctx context.Context, passengerID string, tickets *domain.PassengerTickets) error {
	key := passengerTicketsPrefix + passengerID
	data, err := json.Marshal(tickets)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, PassengerTicketsTTL).Err()
}

// InvalidatePassengerTickets removes a passenger's ticket listing from
// cache.
func (s *CacheStore) InvalidatePassengerTickets(ctx context.Context, passengerID string) error {
	key := passengerTicketsPrefix + passengerID
	return s.client.Del(ctx, key).Err()
}

// GetRouteUsage retrieves the cached route usage report. Returns nil on
// cache miss.
func (s *CacheStore) GetRouteUsage(ctx context.Context) ([]domain.RouteUsage, error) {
	data, err := s.client.Get(ctx, routeUsageKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var usage []domain.RouteUsage
	if err := json.Unmarshal(data, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}

// SetRouteUsage stores the route usage report.
func (s *CacheStore) SetRouteUsage(ctx context.Context, usage []domain.RouteUsage) error {
	data, err := json.Marshal(usage)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, routeUsageKey, data, RouteUsageTTL).Err()
}
