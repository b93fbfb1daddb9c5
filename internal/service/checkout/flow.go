// Package checkout drives the two-step checkout: shipping and payment data
// collection, then a single submission to the order collaborator.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"marketflow/internal/cart"
	"marketflow/internal/domain"
	"marketflow/internal/pricing"
	orderrepo "marketflow/internal/repository/order"
)

type State string

const (
	StateShipping   State = "shipping"
	StatePayment    State = "payment"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// IsTerminal reports whether no further transition is possible. Failed is not
// terminal: the user may resubmit payment any number of times.
func (s State) IsTerminal() bool {
	return s == StateConfirmed
}

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrInvalidState     = errors.New("invalid checkout state")
	ErrSubmissionFailed = errors.New("order submission failed")
)

// MissingFieldsError reports which required fields were empty. It causes no
// state transition.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Catalog resolves cart product ids to catalog records.
type Catalog interface {
	Resolve(ctx context.Context, ids []int) ([]domain.Product, error)
}

// Submitter persists the order snapshot.
type Submitter interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
}

// Flow holds the checkout state for one session. The mutex serializes
// transitions, so a submission in flight cannot race a second submit.
type Flow struct {
	cartMgr *cart.Manager
	catalog Catalog
	orders  Submitter
	logger  *log.Logger

	mu       sync.Mutex
	state    State
	shipping domain.ShippingAddress
}

func NewFlow(cartMgr *cart.Manager, catalog Catalog, orders Submitter, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Flow{
		cartMgr: cartMgr,
		catalog: catalog,
		orders:  orders,
		logger:  logger,
		state:   StateShipping,
	}
}

// Begin (re)enters the shipping step. An empty cart never enters checkout.
func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.cartMgr.Items()) == 0 {
		return ErrCartEmpty
	}
	f.state = StateShipping
	f.shipping = domain.ShippingAddress{}
	return nil
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ShippingAddress returns the collected shipping data; it survives back
// navigation.
func (f *Flow) ShippingAddress() domain.ShippingAddress {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shipping
}

// SubmitShipping validates presence of every address field and advances to
// the payment step. No format validation beyond presence.
func (f *Flow) SubmitShipping(addr domain.ShippingAddress) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateShipping {
		return fmt.Errorf("%w: submit shipping from %s", ErrInvalidState, f.state)
	}
	if missing := missingShippingFields(addr); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	f.shipping = addr
	f.state = StatePayment
	return nil
}

// Back returns from payment to shipping, preserving the entered data.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePayment {
		return fmt.Errorf("%w: back from %s", ErrInvalidState, f.state)
	}
	f.state = StateShipping
	return nil
}

// SubmitPayment validates presence of the payment fields and submits the
// order. On success the cart is cleared and the persisted order returned; on
// failure the cart is left untouched and the flow stays retryable.
func (f *Flow) SubmitPayment(ctx context.Context, pay domain.PaymentMethod) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePayment && f.state != StateFailed {
		return nil, fmt.Errorf("%w: submit payment from %s", ErrInvalidState, f.state)
	}
	if missing := missingPaymentFields(pay); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	items := f.cartMgr.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	f.state = StateSubmitting

	products, err := f.catalog.Resolve(ctx, productIDs(items))
	if err != nil {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: resolve products: %v", ErrSubmissionFailed, err)
	}
	quote := pricing.Compute(items, products)

	order, err := f.orders.Create(ctx, orderrepo.CreateOrderInput{
		Items:           snapshotItems(items),
		Total:           quote.Total,
		ShippingAddress: f.shipping,
		PaymentMethod:   pay,
		Status:          domain.OrderStatusConfirmed,
	})
	if err != nil {
		f.state = StateFailed
		f.logger.Printf("checkout: order submission failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	f.cartMgr.ClearCart(ctx)
	f.state = StateConfirmed
	f.logger.Printf("checkout: order %d confirmed", order.ID)
	return order, nil
}

func productIDs(items []domain.LineItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	return ids
}

// snapshotItems copies the cart into the immutable order form. Saved-for-later
// items are part of the snapshot, consistent with how they are priced.
func snapshotItems(items []domain.LineItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, item := range items {
		out[i] = domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return out
}

func missingShippingFields(a domain.ShippingAddress) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"firstName", a.FirstName},
		{"lastName", a.LastName},
		{"email", a.Email},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func missingPaymentFields(p domain.PaymentMethod) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"cardNumber", p.CardNumber},
		{"expiryDate", p.ExpiryDate},
		{"cvv", p.CVV},
		{"nameOnCard", p.NameOnCard},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
