package order

import (
	"context"
	"sync"
	"time"

	"marketflow/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
	now    func() time.Time
}

func NewMemory() Repository {
	return &memoryRepo{now: time.Now}
}

func (r *memoryRepo) Create(_ context.Context, in CreateOrderInput) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := domain.Order{
		ID:              r.nextID(),
		Items:           append([]domain.OrderItem(nil), in.Items...),
		Total:           in.Total,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		Status:          in.Status,
		OrderDate:       r.now().UTC(),
	}
	r.orders = append(r.orders, order)
	cp := order
	return &cp, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetAll(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// nextID mirrors the reference behavior: one past the highest existing id.
func (r *memoryRepo) nextID() int {
	max := 0
	for _, o := range r.orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}
