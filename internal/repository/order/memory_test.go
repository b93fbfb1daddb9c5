package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
)

func TestMemoryCreateAssignsIDAndDate(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	in := CreateOrderInput{
		Items:  []domain.OrderItem{{ProductID: 1, Quantity: 2}},
		Total:  decimal.RequireFromString("86.40"),
		Status: domain.OrderStatusConfirmed,
	}
	first, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected first id 1, got %d", first.ID)
	}
	if first.OrderDate.IsZero() {
		t.Fatal("expected orderDate to be set by the repository")
	}

	second, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}
}

func TestMemoryGetByID(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateOrderInput{
		Items: []domain.OrderItem{{ProductID: 5, Quantity: 1}},
		Total: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != 5 {
		t.Fatalf("unexpected order: %+v", got)
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryGetAll(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, CreateOrderInput{
			Items: []domain.OrderItem{{ProductID: i + 1, Quantity: 1}},
			Total: decimal.NewFromInt(int64(i)),
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	orders, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
}
