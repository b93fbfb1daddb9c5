package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketflow/internal/domain"
)

const productColumns = `
id, title, price, discount_price, rating, review_count, images, category,
COALESCE(description, ''), COALESCE(specifications, '{}'::jsonb), is_prime, in_stock`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
ORDER BY id`
	return r.queryProducts(ctx, q, query)
}

func (r *postgresRepo) GetByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
	return r.queryProducts(ctx, q, category)
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, title, price, discount_price, rating, review_count, images, category, description, specifications, is_prime, in_stock)
VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '{}'::text[]), $8, NULLIF($9, ''), COALESCE($10, '{}'::jsonb), $11, $12)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    price = EXCLUDED.price,
    discount_price = EXCLUDED.discount_price,
    rating = EXCLUDED.rating,
    review_count = EXCLUDED.review_count,
    images = EXCLUDED.images,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    specifications = EXCLUDED.specifications,
    is_prime = EXCLUDED.is_prime,
    in_stock = EXCLUDED.in_stock
RETURNING id`
	res := p
	if err := r.pool.QueryRow(ctx, q,
		p.ID,
		p.Title,
		p.Price,
		p.DiscountPrice,
		p.Rating,
		p.ReviewCount,
		p.Images,
		p.Category,
		p.Description,
		p.Specifications,
		p.IsPrime,
		p.InStock,
	).Scan(&res.ID); err != nil {
		r.logger.Printf("product repo: upsert id=%d error=%v", p.ID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.DiscountPrice,
		&p.Rating,
		&p.ReviewCount,
		&p.Images,
		&p.Category,
		&p.Description,
		&p.Specifications,
		&p.IsPrime,
		&p.InStock,
	)
}
