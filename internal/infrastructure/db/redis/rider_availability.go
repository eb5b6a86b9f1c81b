package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

const (
	fieldActiveRiders = "active_riders"
	fieldQueuedJobs   = "queued_jobs"
	globalRiderScope  = "global"
)

// RiderAvailabilityStore reads rider snapshots published by the dispatch system.
// Key format: riders:zone:<zone_code> (riders:zone:global for the global snapshot),
// a hash with active_riders and queued_jobs fields.
type RiderAvailabilityStore struct {
	client *redis.Client
}

// NewRiderAvailabilityStore creates a RiderAvailabilityStore wrapping the given Redis client.
func NewRiderAvailabilityStore(client *redis.Client) *RiderAvailabilityStore {
	return &RiderAvailabilityStore{client: client}
}

// Snapshot returns the zone snapshot, falling back to the global snapshot when
// the zone has none. Returns domain.ErrNoRiderSnapshot when neither exists.
func (s *RiderAvailabilityStore) Snapshot(ctx context.Context, zoneCode string) (domain.RiderAvailability, error) {
	scopes := []string{globalRiderScope}
	if zoneCode != "" {
		scopes = []string{zoneCode, globalRiderScope}
	}

	for _, scope := range scopes {
		fields, err := s.client.HGetAll(ctx, key(scope)).Result()
		if err != nil {
			return domain.RiderAvailability{}, fmt.Errorf("rider snapshot %s: %w", scope, err)
		}
		if len(fields) == 0 {
			continue
		}
		return parseSnapshot(fields)
	}
	return domain.RiderAvailability{}, domain.ErrNoRiderSnapshot
}

func key(scope string) string {
	return "riders:zone:" + scope
}

func parseSnapshot(fields map[string]string) (domain.RiderAvailability, error) {
	active, err := parseCount(fields, fieldActiveRiders)
	if err != nil {
		return domain.RiderAvailability{}, err
	}
	queued, err := parseCount(fields, fieldQueuedJobs)
	if err != nil {
		return domain.RiderAvailability{}, err
	}
	return domain.RiderAvailability{ActiveRiders: active, QueuedJobs: queued}, nil
}

// parseCount reads a non-negative integer field; a missing field counts as 0.
func parseCount(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parse %s: negative count %d", name, n)
	}
	return n, nil
}
