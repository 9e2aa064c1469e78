package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps one counter per user per UTC day. INCR gives the atomic
// increment directly, so no locking is needed. Keys expire two days out,
// which covers clock skew around the day boundary.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed quota store.
func NewRedisStore(client *redis.Client) *redisStore {
	return &redisStore{client: client}
}

const redisKeyTTL = 48 * time.Hour

func dayKey(ownerID string, day time.Time) string {
	return fmt.Sprintf("quota:%s:%s", ownerID, day.Format("2006-01-02"))
}

func (s *redisStore) Current(ctx context.Context, ownerID string) (Quota, error) {
	day := today()
	used, err := s.client.Get(ctx, dayKey(ownerID, day)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Quota{Used: 0, PeriodStart: day}, nil
		}
		return Quota{}, err
	}
	return Quota{Used: used, PeriodStart: day}, nil
}

func (s *redisStore) Increment(ctx context.Context, ownerID string) (Quota, error) {
	day := today()
	key := dayKey(ownerID, day)
	used, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return Quota{}, err
	}
	if used == 1 {
		if err := s.client.Expire(ctx, key, redisKeyTTL).Err(); err != nil {
			return Quota{}, err
		}
	}
	return Quota{Used: int(used), PeriodStart: day}, nil
}

func (s *redisStore) Reset(ctx context.Context, ownerID string) (Quota, error) {
	day := today()
	if err := s.client.Del(ctx, dayKey(ownerID, day)).Err(); err != nil {
		return Quota{}, err
	}
	return Quota{Used: 0, PeriodStart: day}, nil
}

var _ Store = (*redisStore)(nil)
