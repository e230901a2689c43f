package repository

import (
	"context"
	"errors"
	"fmt"

	"rewind/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LegacyUsageRepository mirrors quota increments into usage_tracking, the
// older IP-keyed table still read by external consumers. The current table
// is the source of truth; writes here are best-effort and the gate never
// reads this table to make a decision.
type LegacyUsageRepository interface {
	FindByKey(ctx context.Context, key string) (*model.LegacyUsageRecord, error)
	Increment(ctx context.Context, key string) error
}

type legacyUsageRepo struct {
	pool *pgxpool.Pool
}

// NewLegacyUsageRepo creates a new LegacyUsageRepository.
func NewLegacyUsageRepo(pool *pgxpool.Pool) LegacyUsageRepository {
	return &legacyUsageRepo{pool: pool}
}

func (r *legacyUsageRepo) FindByKey(ctx context.Context, key string) (*model.LegacyUsageRecord, error) {
	const q = `SELECT key, transformation_count, first_used_at, last_used_at
	           FROM usage_tracking WHERE key = $1`
	var rec model.LegacyUsageRecord
	err := r.pool.QueryRow(ctx, q, key).Scan(&rec.Key, &rec.TransformationCount, &rec.FirstUsedAt, &rec.LastUsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding legacy usage record %s: %w", key, err)
	}
	return &rec, nil
}

func (r *legacyUsageRepo) Increment(ctx context.Context, key string) error {
	const q = `
		INSERT INTO usage_tracking (key, transformation_count, first_used_at, last_used_at)
		VALUES ($1, 1, now(), now())
		ON CONFLICT (key) DO UPDATE SET
			transformation_count = usage_tracking.transformation_count + 1,
			last_used_at = now()`
	if _, err := r.pool.Exec(ctx, q, key); err != nil {
		return fmt.Errorf("incrementing legacy usage for %s: %w", key, err)
	}
	return nil
}
