package domain

import "time"

// LineItem is one product entry in the cart. At most one line item exists per
// product id; quantity is always >= 1 while the item is in the cart.
type LineItem struct {
	ProductID     int       `json:"productId"`
	Quantity      int       `json:"quantity"`
	SavedForLater bool      `json:"savedForLater"`
	AddedAt       time.Time `json:"addedAt"`
}
