// Package catalog is the product lookup collaborator: the cart stores only
// product ids and resolves price, discount and stock here at computation
// time.
package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"marketflow/internal/domain"
	productrepo "marketflow/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
	sfg  singleflight.Group
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// GetAll returns every catalog record. Concurrent callers share one
// repository round trip.
func (s *Service) GetAll(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("all", func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) GetByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.GetByCategory(ctx, category)
}

// Resolve returns the catalog records for the given product ids, in catalog
// order. Ids with no catalog record are skipped, not errors; pricing treats
// their line items as contributing zero.
func (s *Service) Resolve(ctx context.Context, ids []int) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []domain.Product
	for _, p := range all {
		if wanted[p.ID] {
			result = append(result, p)
		}
	}
	return result, nil
}
