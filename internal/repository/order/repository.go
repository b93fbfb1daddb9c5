package order

import (
	"context"

	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
)

// CreateOrderInput is the cart snapshot plus checkout data. ID and OrderDate
// are assigned by the repository.
type CreateOrderInput struct {
	Items           []domain.OrderItem
	Total           decimal.Decimal
	ShippingAddress domain.ShippingAddress
	PaymentMethod   domain.PaymentMethod
	Status          string
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
}
