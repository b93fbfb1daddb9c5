package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
)

type stubRepo struct {
	products    []domain.Product
	err         error
	getAllCalls int
	lastQuery   string
}

func (s *stubRepo) GetAll(_ context.Context) ([]domain.Product, error) {
	s.getAllCalls++
	return s.products, s.err
}

func (s *stubRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Search(_ context.Context, query string) ([]domain.Product, error) {
	s.lastQuery = query
	return s.products, s.err
}

func (s *stubRepo) GetByCategory(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func TestResolveSkipsMissingIDs(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{
		{ID: 1, Price: decimal.NewFromInt(10)},
		{ID: 2, Price: decimal.NewFromInt(20)},
		{ID: 3, Price: decimal.NewFromInt(30)},
	}}
	svc := New(repo)

	got, err := svc.Resolve(context.Background(), []int{2, 99, 1})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved products, got %v", got)
	}
	// Catalog order, not request order.
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected resolve order: %v", got)
	}
}

func TestResolveEmptyIDs(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	got, err := svc.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for no ids, got %v", got)
	}
	if repo.getAllCalls != 0 {
		t.Fatal("expected no repository call for empty id set")
	}
}

func TestSearchTrimsAndRejectsEmpty(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{{ID: 1}}}
	svc := New(repo)

	got, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no results for blank query, got %v", got)
	}

	if _, err := svc.Search(context.Background(), "  coffee "); err != nil {
		t.Fatalf("search: %v", err)
	}
	if repo.lastQuery != "coffee" {
		t.Fatalf("expected trimmed query, got %q", repo.lastQuery)
	}
}
