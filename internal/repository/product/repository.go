package product

import (
	"context"

	"marketflow/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
