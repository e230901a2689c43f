package repository

import (
	"context"
	"fmt"

	"rewind/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TransformationRepository persists generation requests. Status transitions
// past pending belong to the generation worker and are out of scope here.
type TransformationRepository interface {
	Create(ctx context.Context, t *model.Transformation) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]model.Transformation, error)
}

type transformationRepo struct {
	pool *pgxpool.Pool
}

// NewTransformationRepo creates a new TransformationRepository.
func NewTransformationRepo(pool *pgxpool.Pool) TransformationRepository {
	return &transformationRepo{pool: pool}
}

func (r *transformationRepo) Create(ctx context.Context, t *model.Transformation) error {
	const q = `
		INSERT INTO transformations (
			transformation_id, user_id, fingerprint_hash, era_slug, photo_path, prompt, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	err := r.pool.QueryRow(ctx, q,
		t.TransformationID, t.UserID, t.FingerprintHash, t.EraSlug, t.PhotoPath, t.Prompt, t.Status,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transformation %s: %w", t.TransformationID, err)
	}
	return nil
}

func (r *transformationRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]model.Transformation, error) {
	const q = `
		SELECT transformation_id, user_id, fingerprint_hash, era_slug, photo_path, prompt,
		       status, result_path, created_at, completed_at
		FROM transformations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying transformations for user %s: %w", userID, err)
	}
	defer rows.Close()

	var list []model.Transformation
	for rows.Next() {
		var t model.Transformation
		if err := rows.Scan(
			&t.TransformationID, &t.UserID, &t.FingerprintHash, &t.EraSlug, &t.PhotoPath,
			&t.Prompt, &t.Status, &t.ResultPath, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning transformation: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transformations: %w", err)
	}
	return list, nil
}
