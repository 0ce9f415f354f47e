package memory

import (
	"context"
	"sync"
	"time"

	"orders-backend/application/ports"
)

type idempotencyEntry struct {
	result    any
	expiresAt time.Time
}

// IdempotencyStore is an in-memory ports.IdempotencyStore with TTL-based
// expiry. The first write for a key wins; later writes are ignored, which
// keeps concurrent duplicate requests converging on one outcome.
type IdempotencyStore struct {
	mu      sync.RWMutex
	entries map[string]idempotencyEntry
	ttl     time.Duration
}

// NewIdempotencyStore creates a new in-memory idempotency store. A zero
// ttl falls back to the default retention period.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl == 0 {
		ttl = ports.IdempotencyTTL
	}
	return &IdempotencyStore{
		entries: make(map[string]idempotencyEntry),
		ttl:     ttl,
	}
}

// Get implements IdempotencyStore.Get
func (s *IdempotencyStore) Get(ctx context.Context, operation, key string) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[operation+"#"+key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.result, true, nil
}

// Store implements IdempotencyStore.Store
func (s *IdempotencyStore) Store(ctx context.Context, operation, key string, result any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mapKey := operation + "#" + key
	if entry, exists := s.entries[mapKey]; exists && time.Now().Before(entry.expiresAt) {
		// First writer wins; concurrent duplicates keep the original outcome.
		return nil
	}

	s.entries[mapKey] = idempotencyEntry{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}
