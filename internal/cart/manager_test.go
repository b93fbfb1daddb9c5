package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
)

type stubStore struct {
	items     []domain.LineItem
	loadErr   error
	saveErr   error
	saveCalls int
}

func (s *stubStore) Load(_ context.Context) ([]domain.LineItem, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubStore) Save(_ context.Context, items []domain.LineItem) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = make([]domain.LineItem, len(items))
	copy(s.items, items)
	return nil
}

func newTestManager(t *testing.T) (*Manager, *stubStore) {
	t.Helper()
	store := &stubStore{}
	return NewManager(context.Background(), store, nil), store
}

func TestAddToCartDoublesQuantity(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	if got := m.AddToCart(ctx, 1); got != OutcomeAdded {
		t.Fatalf("expected added, got %s", got)
	}
	if got := m.AddToCart(ctx, 1); got != OutcomeUpdated {
		t.Fatalf("expected updated, got %s", got)
	}

	items := m.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddToCartPreservesAddedAt(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, 1)
	first := m.Items()[0].AddedAt
	m.AddToCart(ctx, 1)

	if got := m.Items()[0].AddedAt; !got.Equal(first) {
		t.Fatalf("addedAt mutated on re-add: %s != %s", got, first)
	}
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, 1)
	m.AddToCart(ctx, 2)

	if got := m.RemoveFromCart(ctx, 99); got != OutcomeNone {
		t.Fatalf("expected no-op for absent product, got %s", got)
	}
	if len(m.Items()) != 2 {
		t.Fatalf("removing absent product changed the cart: %v", m.Items())
	}

	if got := m.RemoveFromCart(ctx, 1); got != OutcomeRemoved {
		t.Fatalf("expected removed, got %s", got)
	}
	items := m.Items()
	if len(items) != 1 || items[0].ProductID != 2 {
		t.Fatalf("unexpected items after removal: %v", items)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	for _, qty := range []int{0, -5} {
		m, _ := newTestManager(t)
		ctx := context.Background()
		m.AddToCart(ctx, 1)

		if got := m.UpdateQuantity(ctx, 1, qty); got != OutcomeRemoved {
			t.Fatalf("quantity %d: expected removal, got %s", qty, got)
		}
		if len(m.Items()) != 0 {
			t.Fatalf("quantity %d: expected empty cart, got %v", qty, m.Items())
		}
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()
	m.AddToCart(ctx, 1)

	if got := m.UpdateQuantity(ctx, 1, 7); got != OutcomeUpdated {
		t.Fatalf("expected updated, got %s", got)
	}
	if got := m.Items()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}

	if got := m.UpdateQuantity(ctx, 42, 3); got != OutcomeNone {
		t.Fatalf("expected no-op for absent product, got %s", got)
	}
}

func TestSaveForLaterToggles(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()
	m.AddToCart(ctx, 1)

	if got := m.SaveForLater(ctx, 1); got != OutcomeSaved {
		t.Fatalf("expected saved, got %s", got)
	}
	if !m.Items()[0].SavedForLater {
		t.Fatal("expected savedForLater true after toggle")
	}
	if got := m.SaveForLater(ctx, 1); got != OutcomeUnsaved {
		t.Fatalf("expected unsaved, got %s", got)
	}
	if m.Items()[0].SavedForLater {
		t.Fatal("expected savedForLater false after second toggle")
	}
	if got := m.SaveForLater(ctx, 99); got != OutcomeNone {
		t.Fatalf("expected no-op for absent product, got %s", got)
	}
}

func TestCountIncludesSavedItems(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()
	m.AddToCart(ctx, 1)
	m.AddToCart(ctx, 1)
	m.AddToCart(ctx, 2)
	m.SaveForLater(ctx, 2)

	if got := m.Count(); got != 3 {
		t.Fatalf("expected count 3 including saved item, got %d", got)
	}
}

func TestClearCartEmptiesAndPersists(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()
	m.AddToCart(ctx, 1)
	m.AddToCart(ctx, 2)

	if got := m.ClearCart(ctx); got != OutcomeCleared {
		t.Fatalf("expected cleared, got %s", got)
	}
	if len(m.Items()) != 0 {
		t.Fatalf("expected empty cart, got %v", m.Items())
	}
	if len(store.items) != 0 {
		t.Fatalf("expected persisted state empty, got %v", store.items)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := &stubStore{}
	ctx := context.Background()

	m := NewManager(ctx, store, nil)
	m.AddToCart(ctx, 3)
	m.AddToCart(ctx, 1)
	m.AddToCart(ctx, 2)
	m.UpdateQuantity(ctx, 1, 4)
	m.SaveForLater(ctx, 2)
	want := m.Items()

	reloaded := NewManager(ctx, store, nil)
	got := reloaded.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %d items after reload, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d differs after reload: %+v != %+v", i, got[i], want[i])
		}
	}
}

func TestLoadFailureFallsBackToEmpty(t *testing.T) {
	store := &stubStore{loadErr: errors.New("corrupt")}
	m := NewManager(context.Background(), store, nil)

	if len(m.Items()) != 0 {
		t.Fatalf("expected empty cart on load failure, got %v", m.Items())
	}
	// The manager must stay usable.
	if got := m.AddToCart(context.Background(), 1); got != OutcomeAdded {
		t.Fatalf("expected added after failed load, got %s", got)
	}
}

func TestSaveFailureKeepsSessionState(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}
	ctx := context.Background()
	m := NewManager(ctx, store, nil)

	m.AddToCart(ctx, 1)
	if len(m.Items()) != 1 {
		t.Fatalf("expected in-memory state despite save failure, got %v", m.Items())
	}
	if store.saveCalls == 0 {
		t.Fatal("expected a save attempt")
	}
}

func TestSubtotalDelegatesToPricing(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()
	m.AddToCart(ctx, 1)
	m.UpdateQuantity(ctx, 1, 2)

	products := []domain.Product{{ID: 1, Price: decimal.RequireFromString("12.50")}}
	if got := m.Subtotal(products); !got.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("expected subtotal 25, got %s", got)
	}
}
