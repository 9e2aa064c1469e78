package quota

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed quota store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Current(ctx context.Context, ownerID string) (Quota, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Quota{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	q, err := s.lockAndEnsure(ctx, tx, ownerID)
	if err != nil {
		return Quota{}, err
	}
	if err = tx.Commit(); err != nil {
		return Quota{}, err
	}
	return q, nil
}

// Increment adds one to today's count inside a transaction. The relative
// UPDATE under the row lock keeps concurrent requests from losing increments.
func (s *pgStore) Increment(ctx context.Context, ownerID string) (Quota, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Quota{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	q, err := s.lockAndEnsure(ctx, tx, ownerID)
	if err != nil {
		return Quota{}, err
	}

	if _, err = tx.ExecContext(ctx, `
UPDATE user_quotas SET generation_count = generation_count + 1 WHERE owner_id = $1`, ownerID); err != nil {
		return Quota{}, err
	}
	q.Used++
	if err = tx.Commit(); err != nil {
		return Quota{}, err
	}
	return q, nil
}

func (s *pgStore) Reset(ctx context.Context, ownerID string) (Quota, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Quota{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	now := today()
	if _, err = tx.ExecContext(ctx, `
INSERT INTO user_quotas (owner_id, generation_count, period_start)
VALUES ($1, 0, $2)
ON CONFLICT (owner_id) DO UPDATE SET generation_count = 0, period_start = EXCLUDED.period_start`, ownerID, now); err != nil {
		return Quota{}, err
	}
	if err = tx.Commit(); err != nil {
		return Quota{}, err
	}
	return Quota{Used: 0, PeriodStart: now}, nil
}

func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, ownerID string) (Quota, error) {
	var q Quota
	var periodStart time.Time
	row := tx.QueryRowContext(ctx, `
SELECT generation_count, period_start FROM user_quotas WHERE owner_id = $1 FOR UPDATE`, ownerID)
	err := row.Scan(&q.Used, &periodStart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			q = Quota{Used: 0, PeriodStart: today()}
			if _, err = tx.ExecContext(ctx, `
INSERT INTO user_quotas (owner_id, generation_count, period_start) VALUES ($1, $2, $3)`,
				ownerID, q.Used, q.PeriodStart); err != nil {
				return Quota{}, err
			}
			return q, nil
		}
		return Quota{}, err
	}
	q.PeriodStart = periodStart.UTC().Truncate(24 * time.Hour)

	now := today()
	if q.PeriodStart.Before(now) {
		q.Used = 0
		q.PeriodStart = now
		if _, err = tx.ExecContext(ctx, `
UPDATE user_quotas SET generation_count = 0, period_start = $1 WHERE owner_id = $2`, now, ownerID); err != nil {
			return Quota{}, err
		}
	}
	return q, nil
}

var _ Store = (*pgStore)(nil)
