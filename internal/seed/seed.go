package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"marketflow/internal/catalogdata"
	categoryrepo "marketflow/internal/repository/category"
	productrepo "marketflow/internal/repository/product"
)

// Apply loads the embedded catalog into postgres. It is idempotent: records
// are upserted by id, so reruns refresh rather than duplicate.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products, err := catalogdata.Products()
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	categories, err := catalogdata.Categories()
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	prodRepo := productrepo.NewPostgres(pool, nil)
	for _, p := range products {
		if _, err := prodRepo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %d (%s): %w", p.ID, p.Title, err)
		}
	}

	catRepo := categoryrepo.NewPostgres(pool)
	for _, c := range categories {
		if _, err := catRepo.Upsert(ctx, c); err != nil {
			return fmt.Errorf("upsert category %d (%s): %w", c.ID, c.Name, err)
		}
	}

	return nil
}
