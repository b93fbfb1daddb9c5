package product

import (
	"context"
	"strings"
	"sync"

	"marketflow/internal/domain"
)

// memoryRepo serves catalog records from memory, seeded from the embedded
// mock data. It is the backend used when no database is configured.
type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemory(seed []domain.Product) Repository {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return &memoryRepo{products: products}
}

func (r *memoryRepo) GetAll(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Search(_ context.Context, query string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	var result []domain.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memoryRepo) GetByCategory(_ context.Context, category string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memoryRepo) Upsert(_ context.Context, in domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == in.ID {
			r.products[i] = in
			cp := in
			return &cp, nil
		}
	}
	if in.ID == 0 {
		in.ID = r.nextID()
	}
	r.products = append(r.products, in)
	cp := in
	return &cp, nil
}

// nextID mirrors the reference behavior: one past the highest existing id.
func (r *memoryRepo) nextID() int {
	max := 0
	for _, p := range r.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
