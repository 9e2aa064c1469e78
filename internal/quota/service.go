package quota

import "context"

// Service manages daily generation quotas via an underlying store.
type Service struct {
	store Store
}

// NewService constructs a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CheckAndPrepare verifies the user is under the daily limit, lazily creating
// the quota record on first use. It returns the count observed at check time
// or ErrQuotaExceeded once the limit is reached.
func (s *Service) CheckAndPrepare(ctx context.Context, ownerID string) (int, error) {
	q, err := s.store.Current(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if q.Used >= DailyLimit {
		return q.Used, ErrQuotaExceeded
	}
	return q.Used, nil
}

// CommitIncrement charges one generation against the user's quota. The store
// applies a relative increment, so the count captured at check time is only
// advisory and concurrent commits cannot lose updates.
func (s *Service) CommitIncrement(ctx context.Context, ownerID string, checkedCount int) error {
	_ = checkedCount
	_, err := s.store.Increment(ctx, ownerID)
	return err
}

// Get returns the current quota snapshot for a user.
func (s *Service) Get(ctx context.Context, ownerID string) (Quota, error) {
	return s.store.Current(ctx, ownerID)
}

// Reset zeroes today's count. Dev-only surface.
func (s *Service) Reset(ctx context.Context, ownerID string) (Quota, error) {
	return s.store.Reset(ctx, ownerID)
}
