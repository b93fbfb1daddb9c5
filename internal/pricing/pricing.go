// Package pricing computes money amounts from a cart snapshot and the catalog
// records its line items refer to. All functions are pure; amounts stay exact
// decimals internally and are rounded to two places only at presentation.
package pricing

import (
	"github.com/shopspring/decimal"

	"marketflow/internal/domain"
)

// Business-rule constants. Decimals cannot be Go constants, so these are
// package-level values; treat them as read-only configuration.
var (
	// FreeShippingThreshold waives the shipping fee when the subtotal is
	// strictly greater than this amount.
	FreeShippingThreshold = decimal.NewFromInt(35)

	// FlatShippingFee applies whenever the threshold is not exceeded.
	FlatShippingFee = decimal.RequireFromString("5.99")

	// TaxRate is the flat tax applied to the subtotal.
	TaxRate = decimal.RequireFromString("0.08")
)

// Quote is the derived money breakdown for a cart snapshot.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`

	// FreeShippingGap is how much more the subtotal needs to reach free
	// shipping; zero when shipping is already waived. Presentation aid only.
	FreeShippingGap decimal.Decimal `json:"freeShippingGap"`
}

// Subtotal sums unit price times quantity over all line items. Items whose
// product is missing from the resolved set contribute zero. Items flagged
// saved-for-later are included; excluding them is a policy this storefront
// deliberately does not apply.
func Subtotal(items []domain.LineItem, products []domain.Product) decimal.Decimal {
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	sum := decimal.Zero
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		sum = sum.Add(p.UnitPrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Compute derives the full quote for a cart snapshot.
//
// An empty cart still yields the flat shipping fee: the function is a faithful
// mapping of the business rules and does not gate on cart size. Checkout
// rejects empty carts before ever asking for a quote, so the fee-on-empty path
// is unreachable end to end.
func Compute(items []domain.LineItem, products []domain.Product) Quote {
	subtotal := Subtotal(items, products)

	shipping := FlatShippingFee
	gap := FreeShippingThreshold.Sub(subtotal)
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
		gap = decimal.Zero
	}
	if gap.IsNegative() {
		gap = decimal.Zero
	}

	tax := subtotal.Mul(TaxRate)

	return Quote{
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           subtotal.Add(shipping).Add(tax),
		FreeShippingGap: gap,
	}
}
