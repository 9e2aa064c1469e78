package quota

import "context"

// Store persists per-user generation counts. Implementations must roll the
// period over at the UTC day boundary and lazily create records on first use.
type Store interface {
	// Current returns the user's quota for today, creating a zero record if
	// none exists yet.
	Current(ctx context.Context, ownerID string) (Quota, error)
	// Increment atomically adds one to today's count and returns the result.
	// Concurrent callers must never lose an update.
	Increment(ctx context.Context, ownerID string) (Quota, error)
	// Reset zeroes today's count.
	Reset(ctx context.Context, ownerID string) (Quota, error)
}
