// Package cart owns the authoritative in-session cart collection.
package cart

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
	"marketflow/internal/pricing"
)

// Store persists the whole cart collection under a fixed key.
type Store interface {
	// Load returns the previously persisted collection, or an empty one when
	// nothing was persisted yet.
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}

// Outcome names what a mutating operation actually did. Each mutating call
// yields exactly one outcome so a UI layer can surface one notification per
// user action.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
	OutcomeRemoved Outcome = "removed"
	OutcomeSaved   Outcome = "saved"
	OutcomeUnsaved Outcome = "unsaved"
	OutcomeCleared Outcome = "cleared"
	// OutcomeNone means the call was a no-op (absent product id).
	OutcomeNone Outcome = "none"
)

// Message is the user-facing notification text for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeAdded:
		return "Item added to cart!"
	case OutcomeUpdated:
		return "Cart updated successfully!"
	case OutcomeRemoved:
		return "Item removed from cart"
	case OutcomeSaved:
		return "Item saved for later"
	case OutcomeUnsaved:
		return "Item moved back to cart"
	case OutcomeCleared:
		return "Cart cleared"
	default:
		return ""
	}
}

// Manager is the single source of truth for the session's cart. Mutations are
// written through to the injected Store; a failed write degrades persistence
// only, never the in-memory collection.
type Manager struct {
	store  Store
	logger *log.Logger
	now    func() time.Time

	mu    sync.Mutex
	items []domain.LineItem
}

// NewManager loads the persisted cart from store. An absent, malformed or
// unreadable persisted state falls back to an empty cart with a log line; it
// never fails construction.
func NewManager(ctx context.Context, store Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := &Manager{store: store, logger: logger, now: time.Now}

	items, err := store.Load(ctx)
	if err != nil {
		logger.Printf("cart: load persisted cart failed, starting empty: %v", err)
		items = nil
	}
	m.items = items
	return m
}

// AddToCart inserts a new line item with quantity 1, or increments the
// existing line item for the product. Stock is not checked here; out-of-stock
// enforcement belongs to the presentation layer.
func (m *Manager) AddToCart(ctx context.Context, productID int) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity++
			m.persist(ctx)
			return OutcomeUpdated
		}
	}

	m.items = append(m.items, domain.LineItem{
		ProductID: productID,
		Quantity:  1,
		AddedAt:   m.now(),
	})
	m.persist(ctx)
	return OutcomeAdded
}

// RemoveFromCart deletes the line item for the product. Removing an absent
// product is a no-op, not an error.
func (m *Manager) RemoveFromCart(ctx context.Context, productID int) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(ctx, productID)
}

func (m *Manager) removeLocked(ctx context.Context, productID int) Outcome {
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist(ctx)
			return OutcomeRemoved
		}
	}
	return OutcomeNone
}

// UpdateQuantity sets the line item's quantity. A quantity below 1 removes
// the line item entirely; an absent product is a no-op.
func (m *Manager) UpdateQuantity(ctx context.Context, productID, quantity int) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity < 1 {
		return m.removeLocked(ctx, productID)
	}
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			m.persist(ctx)
			return OutcomeUpdated
		}
	}
	return OutcomeNone
}

// SaveForLater toggles the saved-for-later flag. The item stays in the
// collection and keeps counting toward totals.
func (m *Manager) SaveForLater(ctx context.Context, productID int) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].SavedForLater = !m.items[i].SavedForLater
			m.persist(ctx)
			if m.items[i].SavedForLater {
				return OutcomeSaved
			}
			return OutcomeUnsaved
		}
	}
	return OutcomeNone
}

// ClearCart empties the collection unconditionally.
func (m *Manager) ClearCart(ctx context.Context) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persist(ctx)
	return OutcomeCleared
}

// Items returns a copy of the collection in insertion order.
func (m *Manager) Items() []domain.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.LineItem, len(m.items))
	copy(out, m.items)
	return out
}

// Count is the sum of all quantities, saved-for-later items included.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// Subtotal prices the current collection against the resolved products.
func (m *Manager) Subtotal(products []domain.Product) decimal.Decimal {
	return pricing.Subtotal(m.Items(), products)
}

func (m *Manager) persist(ctx context.Context) {
	if err := m.store.Save(ctx, m.items); err != nil {
		m.logger.Printf("cart: persist failed: %v", err)
	}
}
