package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
)

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Aurora 4K TV", Category: "Electronics", Description: "55-inch smart TV", Price: decimal.NewFromInt(499)},
		{ID: 2, Title: "BrewMaster Coffee Maker", Category: "Home & Kitchen", Description: "Programmable drip machine", Price: decimal.NewFromInt(89)},
		{ID: 3, Title: "ZenFlex Yoga Mat", Category: "Sports & Outdoors", Description: "Non-slip mat", Price: decimal.NewFromInt(24)},
	}
}

func TestMemoryGetByID(t *testing.T) {
	repo := NewMemory(seedProducts())
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "BrewMaster Coffee Maker" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemorySearchMatchesTitleAndDescription(t *testing.T) {
	repo := NewMemory(seedProducts())
	ctx := context.Background()

	got, err := repo.Search(ctx, "coffee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected case-insensitive title match, got %v", got)
	}

	got, err = repo.Search(ctx, "smart tv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected description match, got %v", got)
	}
}

func TestMemoryGetByCategory(t *testing.T) {
	repo := NewMemory(seedProducts())

	got, err := repo.GetByCategory(context.Background(), "Electronics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected category result: %v", got)
	}
}

func TestMemoryUpsert(t *testing.T) {
	repo := NewMemory(seedProducts())
	ctx := context.Background()

	updated := domain.Product{ID: 1, Title: "Aurora 4K TV (2026)", Category: "Electronics", Price: decimal.NewFromInt(449)}
	if _, err := repo.Upsert(ctx, updated); err != nil {
		t.Fatalf("upsert existing: %v", err)
	}
	p, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if p.Title != "Aurora 4K TV (2026)" {
		t.Fatalf("upsert did not replace record: %+v", p)
	}

	created, err := repo.Upsert(ctx, domain.Product{Title: "New Thing", Price: decimal.NewFromInt(5)})
	if err != nil {
		t.Fatalf("upsert new: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected next id 4, got %d", created.ID)
	}
}
