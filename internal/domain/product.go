package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as plain JSON numbers, matching the catalog records.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog record. The cart stores only product ids; price and
// stock are always read from the catalog at computation time.
type Product struct {
	ID             int               `json:"id"`
	Title          string            `json:"title"`
	Price          decimal.Decimal   `json:"price"`
	DiscountPrice  *decimal.Decimal  `json:"discountPrice,omitempty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Description    string            `json:"description,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	IsPrime        bool              `json:"isPrime"`
	InStock        bool              `json:"inStock"`
}

// UnitPrice is the effective price of one unit: the discount price when one
// is set, the base price otherwise.
func (p Product) UnitPrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
