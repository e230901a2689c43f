package repository

import (
	"context"
	"errors"
	"fmt"

	"rewind/internal/fingerprint"
	"rewind/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quotaColumns = `fingerprint_hash, canvas_hash, webgl_hash, audio_hash, screen_hash,
       timezone, language, platform, device_memory, cpu_cores,
       transformation_count, is_blocked, first_seen_at, last_seen_at`

// QuotaRepository owns all access to the anonymous_usage table.
type QuotaRepository interface {
	// FindByHash returns the record with the exact master hash, or nil.
	FindByHash(ctx context.Context, hash string) (*model.QuotaRecord, error)
	// FindCandidates returns records sharing the canvas or webgl hash,
	// most recently seen first, bounded by limit.
	FindCandidates(ctx context.Context, canvasHash, webglHash string, limit int) ([]model.QuotaRecord, error)
	// IncrementUsage records one consumed transformation in a single atomic
	// statement: inserts the fingerprint with count 1 on first use, otherwise
	// increments the counter and refreshes last_seen_at. Returns the row as
	// persisted. The increment happens server-side so concurrent callers for
	// the same fingerprint cannot lose updates.
	IncrementUsage(ctx context.Context, fp fingerprint.Data) (*model.QuotaRecord, error)
}

type quotaRepo struct {
	pool *pgxpool.Pool
}

// NewQuotaRepo creates a new QuotaRepository.
func NewQuotaRepo(pool *pgxpool.Pool) QuotaRepository {
	return &quotaRepo{pool: pool}
}

func (r *quotaRepo) FindByHash(ctx context.Context, hash string) (*model.QuotaRecord, error) {
	q := fmt.Sprintf(`SELECT %s FROM anonymous_usage WHERE fingerprint_hash = $1`, quotaColumns)
	rec, err := scanQuotaRecord(r.pool.QueryRow(ctx, q, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding usage record %s: %w", hash, err)
	}
	return rec, nil
}

func (r *quotaRepo) FindCandidates(ctx context.Context, canvasHash, webglHash string, limit int) ([]model.QuotaRecord, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM anonymous_usage
		WHERE canvas_hash = $1 OR webgl_hash = $2
		ORDER BY last_seen_at DESC
		LIMIT $3`, quotaColumns)
	rows, err := r.pool.Query(ctx, q, canvasHash, webglHash, limit)
	if err != nil {
		return nil, fmt.Errorf("querying usage candidates: %w", err)
	}
	defer rows.Close()

	var records []model.QuotaRecord
	for rows.Next() {
		rec, err := scanQuotaRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning usage candidate: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating usage candidates: %w", err)
	}
	return records, nil
}

func (r *quotaRepo) IncrementUsage(ctx context.Context, fp fingerprint.Data) (*model.QuotaRecord, error) {
	q := fmt.Sprintf(`
		INSERT INTO anonymous_usage (
			fingerprint_hash, canvas_hash, webgl_hash, audio_hash, screen_hash,
			timezone, language, platform, device_memory, cpu_cores,
			transformation_count, first_seen_at, last_seen_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, now(), now())
		ON CONFLICT (fingerprint_hash) DO UPDATE SET
			transformation_count = anonymous_usage.transformation_count + 1,
			last_seen_at = now()
		RETURNING %s`, quotaColumns)
	rec, err := scanQuotaRecord(r.pool.QueryRow(ctx, q,
		fp.FingerprintHash, fp.CanvasHash, fp.WebGLHash, fp.AudioHash, fp.ScreenHash,
		fp.Timezone, fp.Language, fp.Platform, fp.DeviceMemory, fp.CPUCores,
	))
	if err != nil {
		return nil, fmt.Errorf("incrementing usage for %s: %w", fp.FingerprintHash, err)
	}
	return rec, nil
}

func scanQuotaRecord(row pgx.Row) (*model.QuotaRecord, error) {
	var rec model.QuotaRecord
	err := row.Scan(
		&rec.FingerprintHash, &rec.CanvasHash, &rec.WebGLHash, &rec.AudioHash, &rec.ScreenHash,
		&rec.Timezone, &rec.Language, &rec.Platform, &rec.DeviceMemory, &rec.CPUCores,
		&rec.TransformationCount, &rec.IsBlocked, &rec.FirstSeenAt, &rec.LastSeenAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
