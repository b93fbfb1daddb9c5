package category

import (
	"context"

	"marketflow/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	GetByLevel(ctx context.Context, level int) ([]domain.Category, error)
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}
