package quota

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]Quota
}

// NewMemoryStore constructs an in-memory quota store for tests and dev mode.
func NewMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Quota)}
}

func (s *memoryStore) Current(ctx context.Context, ownerID string) (Quota, error) {
	if err := ctx.Err(); err != nil {
		return Quota{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(ownerID), nil
}

func (s *memoryStore) Increment(ctx context.Context, ownerID string) (Quota, error) {
	if err := ctx.Err(); err != nil {
		return Quota{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.ensureLocked(ownerID)
	q.Used++
	s.data[ownerID] = q
	return q, nil
}

func (s *memoryStore) Reset(ctx context.Context, ownerID string) (Quota, error) {
	if err := ctx.Err(); err != nil {
		return Quota{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q := Quota{Used: 0, PeriodStart: today()}
	s.data[ownerID] = q
	return q, nil
}

func (s *memoryStore) ensureLocked(ownerID string) Quota {
	now := today()
	q, ok := s.data[ownerID]
	if !ok || q.PeriodStart.Before(now) {
		q = Quota{Used: 0, PeriodStart: now}
		s.data[ownerID] = q
	}
	return q
}

var _ Store = (*memoryStore)(nil)
