package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketflow/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, name, COALESCE(icon, ''), level, parent_id FROM categories ORDER BY level, id`
	return r.queryCategories(ctx, q)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	const q = `SELECT id, name, COALESCE(icon, ''), level, parent_id FROM categories WHERE id = $1`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Icon, &c.Level, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByLevel(ctx context.Context, level int) ([]domain.Category, error) {
	const q = `SELECT id, name, COALESCE(icon, ''), level, parent_id FROM categories WHERE level = $1 ORDER BY id`
	return r.queryCategories(ctx, q, level)
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (id, name, icon, level, parent_id)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    icon = EXCLUDED.icon,
    level = EXCLUDED.level,
    parent_id = EXCLUDED.parent_id
RETURNING id`
	res := c
	if err := r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Icon, c.Level, c.ParentID).Scan(&res.ID); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) queryCategories(ctx context.Context, q string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Level, &c.ParentID); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
