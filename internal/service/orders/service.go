// Package orders is the order submission collaborator. An order exists only
// after the repository call fully succeeds; there is no partial state.
package orders

import (
	"context"
	"errors"

	"marketflow/internal/domain"
	orderrepo "marketflow/internal/repository/order"
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Create persists the cart snapshot as an order. Status defaults to
// confirmed; id and orderDate come back from the repository.
func (s *Service) Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("order items required")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, errors.New("order item quantity must be positive")
		}
	}
	if in.Status == "" {
		in.Status = domain.OrderStatusConfirmed
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.GetAll(ctx)
}
