package repository

import (
	"context"
	"errors"
	"fmt"

	"rewind/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eraColumns = `era_id, slug, name, description, start_year, end_year,
       celebrities, sort_order, is_active, created_at, updated_at`

// EraRepository reads the era catalog.
type EraRepository interface {
	// ListActive returns active eras in display order.
	ListActive(ctx context.Context) ([]model.Era, error)
	// GetBySlug retrieves an era by its slug, or nil when absent.
	GetBySlug(ctx context.Context, slug string) (*model.Era, error)
}

type eraRepo struct {
	pool *pgxpool.Pool
}

// NewEraRepo creates a new EraRepository.
func NewEraRepo(pool *pgxpool.Pool) EraRepository {
	return &eraRepo{pool: pool}
}

func (r *eraRepo) ListActive(ctx context.Context) ([]model.Era, error) {
	q := fmt.Sprintf(`SELECT %s FROM eras WHERE is_active ORDER BY sort_order ASC, name ASC`, eraColumns)
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying eras: %w", err)
	}
	defer rows.Close()

	var eras []model.Era
	for rows.Next() {
		era, err := scanEra(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning era: %w", err)
		}
		eras = append(eras, *era)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating eras: %w", err)
	}
	return eras, nil
}

func (r *eraRepo) GetBySlug(ctx context.Context, slug string) (*model.Era, error) {
	q := fmt.Sprintf(`SELECT %s FROM eras WHERE slug = $1`, eraColumns)
	era, err := scanEra(r.pool.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding era %s: %w", slug, err)
	}
	return era, nil
}

func scanEra(row pgx.Row) (*model.Era, error) {
	var era model.Era
	err := row.Scan(
		&era.EraID, &era.Slug, &era.Name, &era.Description, &era.StartYear, &era.EndYear,
		&era.Celebrities, &era.SortOrder, &era.IsActive, &era.CreatedAt, &era.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &era, nil
}
