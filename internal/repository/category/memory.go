package category

import (
	"context"
	"sync"

	"marketflow/internal/domain"
)

type memoryRepo struct {
	mu         sync.RWMutex
	categories []domain.Category
}

func NewMemory(seed []domain.Category) Repository {
	categories := make([]domain.Category, len(seed))
	copy(categories, seed)
	return &memoryRepo{categories: categories}
}

func (r *memoryRepo) GetAll(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByLevel(_ context.Context, level int) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Category
	for _, c := range r.categories {
		if c.Level == level {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memoryRepo) Upsert(_ context.Context, in domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == in.ID {
			r.categories[i] = in
			cp := in
			return &cp, nil
		}
	}
	r.categories = append(r.categories, in)
	cp := in
	return &cp, nil
}
